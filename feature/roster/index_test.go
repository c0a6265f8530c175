package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildIndex(t *testing.T) {
	records := []CoordinatorRecord{
		{RecordID: "rec1", RawUserID: "<@U111>", RawName: "Suzi"},
		{RecordID: "rec2", RawUserID: "U222", RawName: "  Anna "},
		{RecordID: "rec3", RawUserID: "not an id", RawName: "Emily"},
		{RecordID: "rec4", RawUserID: nil, RawName: "Kate"},
		{RecordID: "rec5", RawUserID: []any{"<@W555>"}, RawName: nil},
	}

	index, invalid := BuildIndex(records)

	assert.Equal(t, 2, invalid)
	assert.Equal(t, map[string]string{"rec1": "U111", "rec2": "U222", "rec5": "W555"}, index.ByRecordID)
	assert.Equal(t, map[string]string{"suzi": "U111", "anna": "U222"}, index.ByName)
}

func TestBuildIndex_DuplicateNameLastWins(t *testing.T) {
	index, invalid := BuildIndex([]CoordinatorRecord{
		{RecordID: "rec1", RawUserID: "U111", RawName: "Suzi"},
		{RecordID: "rec2", RawUserID: "U999", RawName: "SUZI"},
	})

	assert.Zero(t, invalid)
	assert.Equal(t, "U999", index.ByName["suzi"])
	assert.Equal(t, "U111", index.ByRecordID["rec1"])
	assert.Equal(t, "U999", index.ByRecordID["rec2"])
}

func TestBuildIndex_Empty(t *testing.T) {
	index, invalid := BuildIndex(nil)
	assert.Zero(t, invalid)
	assert.Empty(t, index.ByRecordID)
	assert.Empty(t, index.ByName)
}

func TestBuildIndex_PlaceholderIDIsInvalid(t *testing.T) {
	index, invalid := BuildIndex([]CoordinatorRecord{
		{RecordID: "rec1", RawUserID: "UNKNOWN", RawName: "Pending Person"},
		{RecordID: "rec2", RawUserID: "U222", RawName: "Recep Tayyip"},
	})

	assert.Equal(t, 1, invalid)
	assert.NotContains(t, index.ByRecordID, "rec1")
	assert.NotContains(t, index.ByName, "pending person")

	members := index.ResolveMembership("Pending Person, recep tayyip")
	assert.Equal(t, []string{"U222"}, members)
}
