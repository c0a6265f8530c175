package roster

import (
	"regexp"
	"strings"

	"hub-sync/core/utils"

	"golang.org/x/text/cases"
)

var (
	// userIDPattern matches Slack user ids: U (regular) or W (Enterprise Grid)
	// followed by uppercase alphanumerics with at least one digit. The id must
	// not continue a preceding word; the capture group holds the id.
	userIDPattern = regexp.MustCompile(`(?:^|[^A-Za-z0-9])([UW][A-Z0-9]*[0-9][A-Z0-9]*)`)

	// referencePattern matches Airtable record ids used as foreign keys.
	referencePattern = regexp.MustCompile(`^rec[A-Za-z0-9]+$`)
)

// NormalizeUserID returns the first Slack user id found in v.
// Strings are searched directly, so mention decoration such as "<@U123>" is
// ignored. Lists are stringified and joined before searching. Any other shape
// (nil, objects, numbers) has no id.
func NormalizeUserID(v any) (string, bool) {
	var text string

	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		text = val
	default:
		items, ok := utils.ToSlice(v)
		if !ok {
			return "", false
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, utils.ToString(item))
		}
		text = strings.Join(parts, " ")
	}

	m := userIDPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// NormalizeName canonicalizes a display name: surrounding whitespace is trimmed
// and the result is case-folded. nil yields "", meaning no name.
func NormalizeName(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return foldName(val)
	}

	if items, ok := utils.ToSlice(v); ok {
		parts := make([]string, 0, len(items))
		for _, item := range items {
			if s := strings.TrimSpace(utils.ToString(item)); s != "" {
				parts = append(parts, s)
			}
		}
		return foldName(strings.Join(parts, ", "))
	}
	return foldName(utils.ToString(v))
}

func foldName(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
