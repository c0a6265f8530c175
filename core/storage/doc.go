// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to expose the few operations needed to read roster
// table exports (JSON snapshots) from a bucket. This supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "roster")
package storage
