// Package database manages the optional MySQL connection used when the roster
// tables are mirrored into SQL instead of read from Airtable.
//
// Connect opens a GORM handle with DSN-level timeouts and verifies it with a ping,
// so misconfiguration fails fast before a sync run starts.
package database
