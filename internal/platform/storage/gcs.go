package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	fbstorage "firebase.google.com/go/v4/storage"
)

// GCSStore implements Store on Cloud Storage buckets reached through the
// Firebase app's storage client. Buckets are expected to allow public reads;
// access control beyond that lives in bucket IAM, not here.
type GCSStore struct {
	client *fbstorage.Client
}

// NewGCSStore creates a Cloud Storage backed store.
func NewGCSStore(client *fbstorage.Client) *GCSStore {
	return &GCSStore{client: client}
}

// Upload writes the object, overwriting any existing object at the path.
func (s *GCSStore) Upload(ctx context.Context, bucket, objectPath, contentType string, r io.Reader) (string, error) {
	b, err := s.client.Bucket(bucket)
	if err != nil {
		return "", fmt.Errorf("bucket %s: %w", bucket, err)
	}

	w := b.Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write object %s: %w", objectPath, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize object %s: %w", objectPath, err)
	}

	return s.PublicURL(bucket, objectPath), nil
}

// Delete removes the object.
func (s *GCSStore) Delete(ctx context.Context, bucket, objectPath string) error {
	b, err := s.client.Bucket(bucket)
	if err != nil {
		return fmt.Errorf("bucket %s: %w", bucket, err)
	}
	if err := b.Object(objectPath).Delete(ctx); err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("delete object %s: %w", objectPath, err)
	}
	return nil
}

// PublicURL returns the canonical public URL for an object.
func (s *GCSStore) PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}

// Compile-time interface check
var _ Store = (*GCSStore)(nil)
