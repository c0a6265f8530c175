package hubsync

// Outcome is the terminal state of one hub in a run.
type Outcome string

const (
	// OutcomeUpdated means the group membership was replaced.
	OutcomeUpdated Outcome = "updated"
	// OutcomePlanned means an update is due but was not sent (dry run).
	OutcomePlanned Outcome = "planned"
	// OutcomeSkippedNoGroupID means the hub has no group id.
	OutcomeSkippedNoGroupID Outcome = "skipped_no_group_id"
	// OutcomeSkippedEmptyMembership means no coordinator resolved; Slack
	// rejects empty groups so no update is attempted.
	OutcomeSkippedEmptyMembership Outcome = "skipped_empty_membership"
	// OutcomeFailed means the update call returned an error.
	OutcomeFailed Outcome = "failed"
)

// HubResult is the result of processing a single hub.
type HubResult struct {
	// HubID is the hub's record id.
	HubID string `json:"hub_id"`
	// GroupID is the Slack user group id, empty when missing.
	GroupID string `json:"group_id,omitempty"`
	// Outcome is the terminal state reached.
	Outcome Outcome `json:"outcome"`
	// Members is the resolved membership, in first-occurrence order.
	Members []string `json:"members"`
	// Unresolved lists tokens that matched no coordinator.
	Unresolved []string `json:"unresolved,omitempty"`
	// Error is the update failure message for OutcomeFailed.
	Error string `json:"error,omitempty"`
}

// Summary provides aggregate counts for a run.
type Summary struct {
	TotalHubs              int `json:"total_hubs"`
	Updated                int `json:"updated"`
	Planned                int `json:"planned"`
	SkippedNoGroupID       int `json:"skipped_no_group_id"`
	SkippedEmptyMembership int `json:"skipped_empty_membership"`
	Failed                 int `json:"failed"`
	// InvalidCoordinators counts coordinators whose user id could not be normalized.
	InvalidCoordinators int `json:"invalid_coordinators"`
	// UnresolvedTokens counts tokens, across all hubs, that matched no coordinator.
	UnresolvedTokens int `json:"unresolved_tokens"`
}

// Report is the outcome of one run.
type Report struct {
	RunID   string      `json:"run_id"`
	DryRun  bool        `json:"dry_run"`
	Results []HubResult `json:"results"`
	Summary Summary     `json:"summary"`
}

// RunOptions controls run behavior.
type RunOptions struct {
	// DryRun resolves memberships without calling the group updater.
	DryRun bool
}

// summarize recomputes the outcome counts from the results.
func (r *Report) summarize() {
	invalid := r.Summary.InvalidCoordinators
	s := Summary{TotalHubs: len(r.Results), InvalidCoordinators: invalid}

	for _, res := range r.Results {
		s.UnresolvedTokens += len(res.Unresolved)
		switch res.Outcome {
		case OutcomeUpdated:
			s.Updated++
		case OutcomePlanned:
			s.Planned++
		case OutcomeSkippedNoGroupID:
			s.SkippedNoGroupID++
		case OutcomeSkippedEmptyMembership:
			s.SkippedEmptyMembership++
		case OutcomeFailed:
			s.Failed++
		}
	}
	r.Summary = s
}
