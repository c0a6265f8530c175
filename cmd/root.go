package cmd

import (
	"fmt"
	"os"

	"hub-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "hub-sync",
	Short: "Hub coordinator to Slack user group sync",
	Long: `hub-sync mirrors the coordinators of each hub in the roster base
into the hub's Slack user group.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on any returned error.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with the development config for readable CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
