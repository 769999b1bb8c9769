package mocks

import (
	"context"
	"strings"

	"github.com/josptrra/be-rasadhana/domain"
)

// MockBlobStore implements domain.BlobStore for testing
type MockBlobStore struct {
	PutFunc       func(ctx context.Context, key string, data []byte, contentType string) (string, error)
	DeleteFunc    func(ctx context.Context, key string) error
	KeyForURLFunc func(url string) (string, bool)

	// PutKeys records every key handed to the default Put.
	PutKeys []string
	// DeletedKeys records every key handed to the default Delete.
	DeletedKeys []string
}

const mockBaseURL = "https://blobs.test/bucket/"

// NewMockBlobStore creates a new MockBlobStore with default behaviors
func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{}
}

// Put stores an object and returns its public URL
func (m *MockBlobStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, key, data, contentType)
	}
	// Default behavior: success with a derived URL
	m.PutKeys = append(m.PutKeys, key)
	return mockBaseURL + key, nil
}

// Delete removes an object
func (m *MockBlobStore) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	// Default behavior: success, recorded
	m.DeletedKeys = append(m.DeletedKeys, key)
	return nil
}

// KeyForURL derives the object key from a public URL
func (m *MockBlobStore) KeyForURL(url string) (string, bool) {
	if m.KeyForURLFunc != nil {
		return m.KeyForURLFunc(url)
	}
	// Default behavior: invert the default Put
	if !strings.HasPrefix(url, mockBaseURL) {
		return "", false
	}
	return strings.TrimPrefix(url, mockBaseURL), true
}

// Compile-time interface compliance verification
var _ domain.BlobStore = (*MockBlobStore)(nil)
