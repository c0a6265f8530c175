package cmd

import (
	"context"
	"fmt"

	"hub-sync/core/logger"
	"hub-sync/core/slack"
	"hub-sync/feature/hubsync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dryRunSync bool

// syncCmd runs one sync over every hub.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push each hub's coordinators to its Slack user group",
	Long: `Reads the coordinators and hubs tables, resolves each hub's coordinators
to Slack user ids and replaces the membership of the hub's user group.

Hubs without a group id or without any resolvable coordinator are skipped.
A failed update is logged and the remaining hubs are still processed; the
command only fails when configuration is missing or a table cannot be loaded.

Examples:
  # Sync all hubs
  hub-sync sync

  # Show what would be pushed without calling Slack
  hub-sync sync --dry-run`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Resolve memberships without updating Slack")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	lister, err := newLister(cfg)
	if err != nil {
		return err
	}

	svc := hubsync.NewService(lister, slack.NewClient(cfg.Slack), cfg.Sync, l)
	report, err := svc.Run(ctx, hubsync.RunOptions{DryRun: dryRunSync})
	if err != nil {
		return err
	}

	printSyncReport(l, report)
	return nil
}

// printSyncReport logs the per-hub outcomes that need attention.
func printSyncReport(l *zap.Logger, report *hubsync.Report) {
	for _, res := range report.Results {
		switch res.Outcome {
		case hubsync.OutcomePlanned:
			l.Info("Planned update",
				zap.String("hub_id", res.HubID),
				zap.String("group_id", res.GroupID),
				zap.Strings("members", res.Members),
			)
		case hubsync.OutcomeFailed:
			l.Warn("Hub update failed",
				zap.String("hub_id", res.HubID),
				zap.String("group_id", res.GroupID),
				zap.String("error", res.Error),
			)
		}
	}

	if report.DryRun {
		l.Info("Dry-run mode: No changes were made.")
	}
}
