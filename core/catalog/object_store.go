package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"backpack-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectStore caches the snapshot as a single object in a bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	object string
}

// NewObjectStore creates a store backed by bucket/object.
func NewObjectStore(client storage.Client, bucket, object string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket, object: object}
}

// Load downloads and decodes the snapshot object.
func (s *ObjectStore) Load(ctx context.Context) (*Snapshot, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrNotCached
		}
		return nil, fmt.Errorf("failed to get catalog object: %w", err)
	}
	defer obj.Close()

	raw, err := io.ReadAll(obj)
	if err != nil {
		// minio reports a missing key on first read
		if storage.IsNotFound(err) {
			return nil, ErrNotCached
		}
		return nil, fmt.Errorf("failed to read catalog object: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode catalog object %s: %w", s.object, err)
	}
	return &snap, nil
}

// Save uploads the snapshot, creating the bucket when needed.
func (s *ObjectStore) Save(ctx context.Context, snap *Snapshot) error {
	if err := storage.EnsureBucket(ctx, s.client, s.bucket, ""); err != nil {
		return err
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.object, bytes.NewReader(raw), int64(len(raw)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to put catalog object: %w", err)
	}
	return nil
}

// Clear deletes the snapshot object.
func (s *ObjectStore) Clear(ctx context.Context) error {
	if err := s.client.RemoveObject(ctx, s.bucket, s.object, minio.RemoveObjectOptions{}); err != nil && !storage.IsNotFound(err) {
		return fmt.Errorf("failed to remove catalog object: %w", err)
	}
	return nil
}
