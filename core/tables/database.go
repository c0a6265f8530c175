package tables

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// recordRow is one mirrored table row. Fields holds the JSON object Airtable
// would return for the record.
type recordRow struct {
	RecordID string `gorm:"column:record_id"`
	Fields   string `gorm:"column:fields"`
}

// DatabaseLister reads table records from a SQL mirror of the roster.
type DatabaseLister struct {
	db    *gorm.DB
	table string
}

// NewDatabaseLister creates a lister over the given records table.
func NewDatabaseLister(db *gorm.DB, recordsTable string) *DatabaseLister {
	return &DatabaseLister{db: db, table: recordsTable}
}

// ListRecords returns the rows of one logical table ordered by position.
func (l *DatabaseLister) ListRecords(ctx context.Context, table string) ([]Record, error) {
	var rows []recordRow
	err := l.db.WithContext(ctx).
		Table(l.table).
		Select("record_id", "fields").
		Where("table_name = ?", table).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query table %q: %w", table, err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		fields := map[string]any{}
		if row.Fields != "" {
			if err := json.Unmarshal([]byte(row.Fields), &fields); err != nil {
				return nil, fmt.Errorf("failed to decode fields of record %s: %w", row.RecordID, err)
			}
		}
		records = append(records, Record{ID: row.RecordID, Fields: fields})
	}
	return records, nil
}
