// Package storage wraps the MinIO client for S3-compatible object storage.
//
// Only the operations the catalog object store needs are exposed (see core/storage/mocks
// for the testify mock). EnsureBucket and IsNotFound cover the two checks every caller repeats.
//
// # Operations
//
//   - BucketExists / MakeBucket: make sure the snapshot bucket is there before writing.
//   - PutObject / GetObject: write and read the snapshot object.
//   - RemoveObject: drop the snapshot.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	store := catalog.NewObjectStore(client, cfg.Storage.Bucket, cfg.Catalog.ObjectName)
package storage
