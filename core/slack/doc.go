// Package slack pushes resolved memberships to Slack user groups.
//
// GroupUpdater is the narrow contract the sync orchestrator consumes. Client
// implements it on top of github.com/slack-go/slack, sending the full member
// list joined with MemberSeparator (full-replace semantics). Slack rejects empty
// user groups, so Client refuses an empty list before calling the API.
package slack
