package utils

import (
	"fmt"
	"reflect"
	"strconv"
)

// ToString converts various types to string.
// Whole floats are rendered without a fractional part, since JSON decoding
// turns every number into a float64.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToSlice reports whether val is a slice or array and, if so, returns its
// elements as []any. Byte slices are treated as strings, not sequences.
func ToSlice(val any) ([]any, bool) {
	switch v := val.(type) {
	case nil, []byte:
		return nil, false
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	}

	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
