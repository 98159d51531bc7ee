package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelfetch/internal/browser"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install the browser used by the browser engine",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("installing playwright driver and chromium")
		if err := browser.Install(); err != nil {
			return fmt.Errorf("installing browser: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Browser engine ready.")
		return nil
	},
}
