// file: cmd/csv.go
// version: 1.1.0
// guid: 9c0d1e2f-3a4b-5c6d-7e8f-9a0b1c2d3e4f

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the full book catalog as CSV",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var out io.Writer = os.Stdout
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", args[0], err)
			}
			defer f.Close()
			out = f
			if term.IsTerminal(int(os.Stdout.Fd())) {
				// Length is unknown up front; the bar just shows bytes.
				bar := progressbar.DefaultBytes(-1, "exporting")
				defer bar.Close()
				out = io.MultiWriter(f, bar)
			}
		}

		n, err := newClient().ExportCSV(cmd.Context(), out)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		if len(args) == 1 {
			fmt.Printf("Wrote %d bytes to %s\n", n, args[0])
		}
		return nil
	},
}

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import books from a CSV file",
	Long:  `Upload a CSV file for server-side import and print the resulting report.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		var reader io.Reader = f
		if info, err := f.Stat(); err == nil && term.IsTerminal(int(os.Stdout.Fd())) {
			bar := progressbar.DefaultBytes(info.Size(), "uploading")
			defer bar.Close()
			reader = io.TeeReader(f, bar)
		}

		report, err := newClient().ImportCSV(cmd.Context(), args[0], reader)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		fmt.Println(report.Message)
		fmt.Printf("Updated records: %d\n", report.UpdatedCount)
		for _, rowErr := range report.Errors {
			fmt.Printf("  - %s\n", rowErr)
		}
		return nil
	},
}

// templateCmd represents the template command
var templateCmd = &cobra.Command{
	Use:   "template [file]",
	Short: "Describe or download the CSV import template",
	Long: `Without arguments, print the template description (columns, encoding,
instructions). With a file argument, download the template CSV itself.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", args[0], err)
			}
			defer f.Close()
			if _, err := client.DownloadCSVTemplate(cmd.Context(), f); err != nil {
				return fmt.Errorf("template download failed: %w", err)
			}
			fmt.Printf("Template saved to %s\n", args[0])
			return nil
		}

		info, err := client.CSVTemplateInfo(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch template info: %w", err)
		}
		fmt.Println(info.Message)
		fmt.Printf("Format: %s (%s)\n", info.FileFormat, info.Encoding)
		fmt.Printf("Required columns: %s\n", strings.Join(info.RequiredColumns, ", "))
		fmt.Printf("Optional columns: %s\n", strings.Join(info.OptionalColumns, ", "))
		for _, line := range info.Instructions {
			fmt.Printf("  - %s\n", line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(templateCmd)
}
