// file: cmd/console.go
// version: 1.1.0
// guid: 7a8b9c0d-1e2f-3a4b-5c6d-7e8f9a0b1c2d

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jdfalk/library-console/internal/config"
	"github.com/jdfalk/library-console/internal/console"
	"github.com/jdfalk/library-console/internal/controller"
)

// consoleCmd represents the console command
var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the interactive admin console",
	Long:  `Start the interactive console against the configured backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		tr, err := newTranslator()
		if err != nil {
			return err
		}

		client := newClient()
		view := console.NewTerminalView(os.Stdout, tr)
		ctrl := controller.New(client, view, tr)
		if term.IsTerminal(int(os.Stdout.Fd())) {
			ctrl.EnableProgress()
		}

		if err := ctrl.Startup(ctx); err != nil {
			if !errors.Is(err, controller.ErrAuthRequired) {
				return err
			}
			// Stale or missing token: clear it, log in and retry once.
			if err := config.ClearToken(); err != nil {
				return err
			}
			if err := runLogin(ctx, client); err != nil {
				return err
			}
			if err := ctrl.Startup(ctx); err != nil {
				return err
			}
		}

		// Live-reload language override files while the console runs.
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := tr.Watch(watchCtx); err != nil {
				fmt.Fprintf(os.Stderr, "language watcher stopped: %v\n", err)
			}
		}()

		return console.New(ctrl, tr, os.Stdin, os.Stdout).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}
