// Package hubsync drives the hub-to-user-group synchronization.
//
// A run loads the coordinators table, indexes it (see feature/roster), loads the
// hubs table and then walks the hubs in table order. Each hub ends in exactly one
// Outcome:
//
//   - skipped_no_group_id: the hub has no Slack user group id.
//   - skipped_empty_membership: no coordinator resolved. Slack rejects empty
//     groups, so the update is never attempted.
//   - planned: an update is due but the run is a dry run.
//   - updated: the group membership was replaced with the resolved list.
//   - failed: the update call failed; the error is logged and the run continues.
//
// Table loading failures (ErrLoadTable) are the only errors Run returns; per-hub
// problems are collected into the Report. Nothing is retried: the next
// scheduled run corrects any drift.
//
// # HTTP Endpoints
//
//   - GET /hubs/preview : Dry run, returns the report.
//   - POST /hubs/sync : Full run, returns the report. Concurrent calls share one run.
package hubsync
