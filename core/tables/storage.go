package tables

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	"hub-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// StorageLister reads table exports stored as {prefix}/{table}.json objects.
// Each export has the Airtable list shape: {"records": [{"id", "fields"}]}.
type StorageLister struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorageLister creates a lister reading exports from bucket.
func NewStorageLister(client storage.Client, bucket, prefix string) *StorageLister {
	return &StorageLister{client: client, bucket: bucket, prefix: prefix}
}

// ObjectName returns the object key holding the export of table.
func (l *StorageLister) ObjectName(table string) string {
	return path.Join(l.prefix, table+".json")
}

// ListRecords downloads and decodes the export of table.
func (l *StorageLister) ListRecords(ctx context.Context, table string) ([]Record, error) {
	exists, err := l.client.BucketExists(ctx, l.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", l.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", l.bucket)
	}

	objectName := l.ObjectName(table)
	obj, err := l.client.GetObject(ctx, l.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", objectName, err)
	}
	defer obj.Close()

	var p page
	if err := json.NewDecoder(obj).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode object %s: %w", objectName, err)
	}
	return p.Records, nil
}
