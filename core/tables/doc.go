// Package tables reads roster tables from a tabular data source.
//
// Every source implements Lister, which returns all records of a named table in
// table order. Three sources are provided:
//
//   - AirtableLister: the Airtable REST API, paging with the offset cursor until
//     none is returned. Non-2xx responses become *HTTPError.
//   - DatabaseLister: a SQL mirror (record_id, fields JSON, position) queried with GORM.
//   - StorageLister: JSON exports in an S3/MinIO bucket.
//
// Any error from a Lister is structural: the sync run aborts.
package tables
