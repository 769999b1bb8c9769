package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestS3Store_URLMapping(t *testing.T) {
	store := &S3Store{
		bucket:  "rasadhana-photos",
		baseURL: "https://storage.googleapis.com",
	}

	url := store.URL("ingredients/abc.jpg")
	assert.Equal(t, "https://storage.googleapis.com/rasadhana-photos/ingredients/abc.jpg", url)

	key, ok := store.KeyForURL(url)
	assert.True(t, ok)
	assert.Equal(t, "ingredients/abc.jpg", key)
}

func TestS3Store_KeyForURL_Foreign(t *testing.T) {
	store := &S3Store{
		bucket:  "rasadhana-photos",
		baseURL: "https://storage.googleapis.com",
	}

	tests := []struct {
		name string
		url  string
	}{
		{"different host", "https://elsewhere.test/rasadhana-photos/ingredients/abc.jpg"},
		{"different bucket", "https://storage.googleapis.com/other-bucket/ingredients/abc.jpg"},
		{"bare prefix without a key", "https://storage.googleapis.com/rasadhana-photos/"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := store.KeyForURL(tt.url)
			assert.False(t, ok)
		})
	}
}
