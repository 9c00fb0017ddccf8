package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
)

// MockStore is an in-memory Store for unit tests.
type MockStore struct {
	mu      sync.RWMutex
	objects map[string][]byte

	// UploadErr and DeleteErr force failures for error-path tests.
	UploadErr error
	DeleteErr error
}

// NewMockStore creates an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{objects: make(map[string][]byte)}
}

func key(bucket, objectPath string) string {
	return bucket + "/" + objectPath
}

func (m *MockStore) Upload(_ context.Context, bucket, objectPath, _ string, r io.Reader) (string, error) {
	if m.UploadErr != nil {
		return "", m.UploadErr
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key(bucket, objectPath)] = buf.Bytes()
	return m.PublicURL(bucket, objectPath), nil
}

func (m *MockStore) Delete(_ context.Context, bucket, objectPath string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(bucket, objectPath)
	if _, ok := m.objects[k]; !ok {
		return ErrObjectNotFound
	}
	delete(m.objects, k)
	return nil
}

func (m *MockStore) PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.example.test/%s/%s", bucket, objectPath)
}

// Has reports whether an object exists, for test assertions.
func (m *MockStore) Has(bucket, objectPath string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[key(bucket, objectPath)]
	return ok
}

// Len returns the number of stored objects.
func (m *MockStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}

// Compile-time interface check
var _ Store = (*MockStore)(nil)
