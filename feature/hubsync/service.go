package hubsync

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hub-sync/core/slack"
	"hub-sync/core/tables"
	"hub-sync/core/utils"
	"hub-sync/feature/roster"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrLoadTable wraps any failure to list a roster table. It aborts the run.
var ErrLoadTable = errors.New("failed to load table")

// Service synchronizes hub coordinators into Slack user groups.
type Service struct {
	lister  tables.Lister
	updater slack.GroupUpdater
	cfg     Config
	logger  *zap.Logger
}

// NewService creates a new sync service.
func NewService(lister tables.Lister, updater slack.GroupUpdater, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		lister:  lister,
		updater: updater,
		cfg:     cfg,
		logger:  logger,
	}
}

// Run loads the roster, resolves every hub and, unless opts.DryRun is set,
// pushes each resolved membership to its group.
//
// Only table loading failures are returned. Hubs that are skipped or whose
// update fails are recorded in the report and the run carries on.
func (s *Service) Run(ctx context.Context, opts RunOptions) (*Report, error) {
	runID := uuid.NewString()
	l := s.logger.With(zap.String("run_id", runID))
	l.Info("Starting hub sync", zap.Bool("dry_run", opts.DryRun))

	report, err := s.plan(ctx, l)
	if err != nil {
		return nil, err
	}
	report.RunID = runID
	report.DryRun = opts.DryRun

	if !opts.DryRun {
		s.apply(ctx, l, report)
	}
	report.summarize()

	l.Info("Hub sync finished",
		zap.Int("total_hubs", report.Summary.TotalHubs),
		zap.Int("updated", report.Summary.Updated),
		zap.Int("planned", report.Summary.Planned),
		zap.Int("skipped_no_group_id", report.Summary.SkippedNoGroupID),
		zap.Int("skipped_empty_membership", report.Summary.SkippedEmptyMembership),
		zap.Int("failed", report.Summary.Failed),
	)
	return report, nil
}

// plan loads both tables and decides the outcome of every hub without
// touching the group updater. Hubs due for an update are OutcomePlanned.
func (s *Service) plan(ctx context.Context, l *zap.Logger) (*Report, error) {
	coordinators, err := s.loadCoordinators(ctx)
	if err != nil {
		return nil, err
	}

	index, invalid := roster.BuildIndex(coordinators)
	l.Info("Indexed coordinators",
		zap.Int("coordinators", len(coordinators)),
		zap.Int("by_record_id", len(index.ByRecordID)),
		zap.Int("by_name", len(index.ByName)),
		zap.Int("invalid", invalid),
	)
	if invalid > 0 {
		l.Warn("Coordinators without a valid Slack ID were skipped", zap.Int("count", invalid))
	}

	hubs, err := s.loadHubs(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{Results: make([]HubResult, 0, len(hubs))}
	report.Summary.InvalidCoordinators = invalid

	for _, hub := range hubs {
		report.Results = append(report.Results, s.planHub(l, index, hub))
	}
	return report, nil
}

func (s *Service) planHub(l *zap.Logger, index *roster.Index, hub roster.HubRecord) HubResult {
	hl := l.With(zap.String("hub_id", hub.RecordID))
	result := HubResult{HubID: hub.RecordID, GroupID: hub.GroupID, Members: []string{}}

	if hub.GroupID == "" {
		hl.Warn("Hub has no group id, skipping")
		result.Outcome = OutcomeSkippedNoGroupID
		return result
	}

	members, unresolved := index.ResolveTokens(roster.ExplodeTokens(hub.RawCoordinators))
	result.Unresolved = unresolved
	if len(unresolved) > 0 {
		hl.Debug("Unresolved coordinator tokens", zap.Strings("tokens", unresolved))
	}

	if len(members) == 0 {
		hl.Warn("Hub has no resolvable coordinators, skipping", zap.String("group_id", hub.GroupID))
		result.Outcome = OutcomeSkippedEmptyMembership
		return result
	}

	result.Members = members
	result.Outcome = OutcomePlanned
	return result
}

// apply sends one update per planned hub, in table order. A failed update is
// recorded and never stops the remaining hubs.
func (s *Service) apply(ctx context.Context, l *zap.Logger, report *Report) {
	for i := range report.Results {
		res := &report.Results[i]
		if res.Outcome != OutcomePlanned {
			continue
		}

		hl := l.With(zap.String("hub_id", res.HubID), zap.String("group_id", res.GroupID))
		if err := s.updater.UpdateMembers(ctx, res.GroupID, res.Members); err != nil {
			hl.Error("Failed to update group membership", zap.Error(err))
			res.Outcome = OutcomeFailed
			res.Error = err.Error()
			continue
		}

		hl.Info("Updated group membership", zap.Int("members", len(res.Members)))
		res.Outcome = OutcomeUpdated
	}
}

func (s *Service) loadCoordinators(ctx context.Context) ([]roster.CoordinatorRecord, error) {
	records, err := s.lister.ListRecords(ctx, s.cfg.CoordinatorsTable)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrLoadTable, s.cfg.CoordinatorsTable, err)
	}

	coordinators := make([]roster.CoordinatorRecord, 0, len(records))
	for _, rec := range records {
		coordinators = append(coordinators, roster.CoordinatorRecord{
			RecordID:  rec.ID,
			RawUserID: rec.Fields[s.cfg.CoordinatorUserField],
			RawName:   rec.Fields[s.cfg.CoordinatorNameField],
		})
	}
	return coordinators, nil
}

func (s *Service) loadHubs(ctx context.Context) ([]roster.HubRecord, error) {
	records, err := s.lister.ListRecords(ctx, s.cfg.HubsTable)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrLoadTable, s.cfg.HubsTable, err)
	}

	hubs := make([]roster.HubRecord, 0, len(records))
	for _, rec := range records {
		hubs = append(hubs, roster.HubRecord{
			RecordID:        rec.ID,
			GroupID:         fieldString(rec.Fields[s.cfg.HubGroupField]),
			RawCoordinators: rec.Fields[s.cfg.HubCoordinatorsField],
		})
	}
	return hubs, nil
}

// fieldString reads a single-valued field. Lookup fields arrive as lists, in
// which case the first non-empty element is used.
func fieldString(v any) string {
	if items, ok := utils.ToSlice(v); ok {
		for _, item := range items {
			if s := fieldString(item); s != "" {
				return s
			}
		}
		return ""
	}
	return strings.TrimSpace(utils.ToString(v))
}
