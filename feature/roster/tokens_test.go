package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplodeTokens(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []string
	}{
		{
			name:  "DelimitedString",
			input: "Suzi, Anna",
			want:  []string{"Suzi", "Anna"},
		},
		{
			name:  "ListWithDelimitedElement",
			input: []any{"Suzi, Anna", "Emily"},
			want:  []string{"Suzi", "Anna", "Emily"},
		},
		{
			name:  "ReferenceList",
			input: []any{"rec123", "rec456"},
			want:  []string{"rec123", "rec456"},
		},
		{
			name:  "TypedStringList",
			input: []string{"recA1", " Anna "},
			want:  []string{"recA1", "Anna"},
		},
		{
			name:  "AllDelimiters",
			input: "Suzi;Anna|Emily\nKate\r\nLiam,,; Noah",
			want:  []string{"Suzi", "Anna", "Emily", "Kate", "Liam", "Noah"},
		},
		{
			name:  "KeepsDuplicates",
			input: "Suzi, Suzi",
			want:  []string{"Suzi", "Suzi"},
		},
		{
			name:  "InternalWhitespaceKept",
			input: "Anna Smith , Suzi",
			want:  []string{"Anna Smith", "Suzi"},
		},
		{
			name:  "ObjectWithRecordID",
			input: map[string]any{"id": "recABC", "name": "Suzi, Anna"},
			want:  []string{"recABC"},
		},
		{
			name:  "ObjectWithRecordIDAltKey",
			input: map[string]any{"recordId": " recXYZ "},
			want:  []string{"recXYZ"},
		},
		{
			name:  "ObjectWithNonReferenceID",
			input: map[string]any{"id": "usrXYZ", "email": "suzi@example.com", "name": "Suzi"},
			want:  []string{"Suzi"},
		},
		{
			name:  "ObjectNamePreference",
			input: map[string]any{"label": "Ignored", "displayName": "Suzi, Anna"},
			want:  []string{"Suzi", "Anna"},
		},
		{
			name:  "ObjectWithListName",
			input: map[string]any{"name": []any{"Suzi", "Anna"}},
			want:  []string{"Suzi", "Anna"},
		},
		{
			name:  "ObjectBlankNameFallsThrough",
			input: map[string]any{"name": "", "Name": "  ", "label": "Suzi"},
			want:  []string{"Suzi"},
		},
		{
			name:  "ObjectNilNameFallsThrough",
			input: map[string]any{"name": nil, "text": "Anna"},
			want:  []string{"Anna"},
		},
		{
			name:  "StringMap",
			input: map[string]string{"name": "Emily"},
			want:  []string{"Emily"},
		},
		{
			name:  "MixedShapes",
			input: []any{map[string]any{"name": "Suzi"}, "rec1", nil, "Anna | Emily", []any{"Kate"}},
			want:  []string{"Suzi", "rec1", "Anna", "Emily", "Kate"},
		},
		{
			name:  "NumberCoerced",
			input: 42.0,
			want:  []string{"42"},
		},
		{
			name:  "BoolCoerced",
			input: true,
			want:  []string{"true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExplodeTokens(tt.input))
		})
	}
}

func TestExplodeTokens_Empty(t *testing.T) {
	for _, in := range []any{nil, "", " , ;| \n", []any{}, []any{nil, ""}} {
		assert.Empty(t, ExplodeTokens(in), "%#v", in)
	}
}

func TestExplodeTokens_UnknownObject(t *testing.T) {
	tokens := ExplodeTokens(map[string]any{"foo": "bar"})
	assert.Len(t, tokens, 1)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  fieldShape
	}{
		{"Nil", nil, shapeAbsent},
		{"String", "Suzi", shapeDelimited},
		{"List", []any{"a"}, shapeNameList},
		{"Reference", map[string]any{"id": "rec1"}, shapeReference},
		{"Structured", map[string]any{"name": "Suzi"}, shapeStructured},
		{"UnknownObject", map[string]any{"email": "x"}, shapeUnknown},
		{"Number", 3.0, shapeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := classify(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}
