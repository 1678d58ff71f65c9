// file: cmd/dashboard.go
// version: 1.0.0
// guid: 0d1e2f3a-4b5c-6d7e-8f9a-0b1c2d3e4f5a

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print the library summary counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := newClient().Dashboard(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch dashboard: %w", err)
		}

		fmt.Printf("Total books:      %d\n", summary.TotalBooks)
		fmt.Printf("Total authors:    %d\n", summary.TotalAuthors)
		fmt.Printf("Total categories: %d\n", summary.TotalCategories)
		fmt.Printf("Books available:  %d\n", summary.BooksAvailable)
		fmt.Printf("Books issued:     %d\n", summary.BooksIssued)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
