// Package roster turns loosely-typed roster table fields into Slack user ids.
//
// # Pipeline
//
//   - NormalizeUserID extracts a Slack user id from a field of any shape.
//   - NormalizeName canonicalizes display names for case/whitespace-insensitive matching.
//   - BuildIndex indexes coordinators by record id and by canonical name.
//   - ExplodeTokens flattens a hub's coordinators field (record ids, names, delimited
//     strings, objects or any mix) into an ordered token list.
//   - Index.ResolveMembership maps tokens to user ids, drops unknown tokens and
//     deduplicates while keeping first-occurrence order.
//
// Shape handling stops at ExplodeTokens: everything after it works on []string.
// A token is a reference when it looks like an Airtable record id ("rec..."),
// otherwise it is treated as a name.
package roster
