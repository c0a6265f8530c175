package tables

import "context"

// Source drivers understood by the command layer.
const (
	DriverAirtable = "airtable"
	DriverDatabase = "database"
	DriverStorage  = "storage"
)

// Record is a single table row: the source's stable record id plus its
// loosely-typed field values, as decoded from JSON.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// Lister lists every record of a table, in table order.
// Implementations hide pagination; a returned error is fatal for the run.
type Lister interface {
	ListRecords(ctx context.Context, table string) ([]Record, error)
}

// Config selects and configures the table source.
type Config struct {
	// Driver is one of airtable, database, storage.
	Driver string `mapstructure:"driver" default:"airtable"`
	// RecordsTable is the SQL table mirroring roster rows (database driver).
	RecordsTable string `mapstructure:"records_table" default:"roster_records"`
	// Prefix is the object key prefix of table exports (storage driver).
	Prefix string `mapstructure:"prefix" default:"tables"`
}

// IsValidDriver checks if the configured driver is known.
func (c Config) IsValidDriver() bool {
	switch c.Driver {
	case DriverAirtable, DriverDatabase, DriverStorage:
		return true
	default:
		return false
	}
}

// page is the Airtable list response shape, also used for storage exports.
type page struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}
