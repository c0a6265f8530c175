package roster

import (
	"regexp"
	"strings"

	"hub-sync/core/utils"
)

// fieldShape tags the shape of a raw coordinators field value.
type fieldShape int

const (
	shapeAbsent fieldShape = iota
	shapeReference
	shapeNameList
	shapeDelimited
	shapeStructured
	shapeUnknown
)

var tokenDelimiters = regexp.MustCompile(`[,;|\r\n]+`)

// referenceKeys are object attributes that may hold a record id.
var referenceKeys = []string{"id", "recordId", "record_id"}

// nameKeys are object attributes that may hold a display name, in preference order.
var nameKeys = []string{"name", "Name", "displayName", "display_name", "fullName", "label", "text", "value"}

// classify tags v with its shape and returns the payload to flatten:
// a string for Reference, Delimited and Unknown, []any for NameList and the
// chosen attribute value for Structured.
func classify(v any) (fieldShape, any) {
	switch val := v.(type) {
	case nil:
		return shapeAbsent, nil
	case string:
		return shapeDelimited, val
	}

	if items, ok := utils.ToSlice(v); ok {
		return shapeNameList, items
	}

	if obj, ok := asObject(v); ok {
		for _, key := range referenceKeys {
			if s, ok := obj[key].(string); ok && referencePattern.MatchString(strings.TrimSpace(s)) {
				return shapeReference, strings.TrimSpace(s)
			}
		}
		for _, key := range nameKeys {
			if attr, ok := obj[key]; ok && !isBlank(attr) {
				return shapeStructured, attr
			}
		}
	}

	return shapeUnknown, utils.ToString(v)
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

func asObject(v any) (map[string]any, bool) {
	switch val := v.(type) {
	case map[string]any:
		return val, true
	case map[string]string:
		obj := make(map[string]any, len(val))
		for k, s := range val {
			obj[k] = s
		}
		return obj, true
	default:
		return nil, false
	}
}

// ExplodeTokens flattens a hub's raw coordinators field into trimmed, non-empty
// tokens in first-occurrence order. Duplicates are kept.
func ExplodeTokens(v any) []string {
	return appendTokens(nil, v)
}

func appendTokens(tokens []string, v any) []string {
	shape, payload := classify(v)

	switch shape {
	case shapeAbsent:
		return tokens
	case shapeReference:
		return append(tokens, payload.(string))
	case shapeNameList:
		for _, item := range payload.([]any) {
			tokens = appendTokens(tokens, item)
		}
		return tokens
	case shapeStructured:
		if s, ok := payload.(string); ok {
			return splitTokens(tokens, s)
		}
		return appendTokens(tokens, payload)
	default:
		return splitTokens(tokens, payload.(string))
	}
}

// splitTokens appends the pieces of a delimited string.
func splitTokens(tokens []string, s string) []string {
	for _, piece := range tokenDelimiters.Split(s, -1) {
		if piece = strings.TrimSpace(piece); piece != "" {
			tokens = append(tokens, piece)
		}
	}
	return tokens
}
