package roster

// CoordinatorRecord is one row of the coordinators table.
type CoordinatorRecord struct {
	// RecordID is the source's stable record id, used as a foreign key by hubs.
	RecordID string
	// RawUserID is the unnormalized user id field value.
	RawUserID any
	// RawName is the unnormalized display name field value.
	RawName any
}

// HubRecord is one row of the hubs table.
type HubRecord struct {
	RecordID string
	// GroupID is the external group id; empty when the hub has none.
	GroupID string
	// RawCoordinators is the coordinators field in whatever shape the source returned.
	RawCoordinators any
}

// Index maps coordinators to user ids by record id and by canonical name.
// It is built once per run and read-only afterwards.
type Index struct {
	ByRecordID map[string]string
	ByName     map[string]string
}

// BuildIndex indexes coordinators in input order and returns the number of
// records skipped because their user id could not be normalized.
//
// When two coordinators share a canonical name the later one wins.
func BuildIndex(records []CoordinatorRecord) (*Index, int) {
	index := &Index{
		ByRecordID: make(map[string]string, len(records)),
		ByName:     make(map[string]string, len(records)),
	}
	invalid := 0

	for _, rec := range records {
		userID, ok := NormalizeUserID(rec.RawUserID)
		if !ok {
			invalid++
			continue
		}

		index.ByRecordID[rec.RecordID] = userID
		if name := NormalizeName(rec.RawName); name != "" {
			index.ByName[name] = userID
		}
	}

	return index, invalid
}
