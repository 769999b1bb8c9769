package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/josptrra/be-rasadhana/domain"
)

// UploadCoordinatorImpl implements domain.UploadCoordinator. It owns
// the ordering guarantee of the two-step commit: a record's URL field
// is updated if and only if the corresponding object write was
// confirmed. The reverse does not hold; a persist failure after a
// successful write leaves an orphaned object, which is reported and
// logged rather than masked.
type UploadCoordinatorImpl struct {
	store  domain.BlobStore
	logger *zap.Logger
}

// NewUploadCoordinator creates a new upload coordinator
func NewUploadCoordinator(store domain.BlobStore, logger *zap.Logger) domain.UploadCoordinator {
	return &UploadCoordinatorImpl{store: store, logger: logger}
}

// Attach implements domain.UploadCoordinator
func (c *UploadCoordinatorImpl) Attach(ctx context.Context, upload domain.Upload, keyPrefix string, persist func(ctx context.Context, url string) error) (string, error) {
	if len(upload.Data) == 0 {
		return "", domain.ErrNoFile
	}

	key := c.objectKey(keyPrefix, upload.Filename)

	url, err := c.store.Put(ctx, key, upload.Data, upload.ContentType)
	if err != nil {
		// No database mutation has happened; the target record is
		// untouched.
		return "", fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	if err := persist(ctx, url); err != nil {
		c.logger.Error("uploaded object is orphaned after persist failure",
			zap.String("object_key", key),
			zap.String("url", url),
			zap.Error(err))
		return "", fmt.Errorf("%w: object %s: %v", domain.ErrPersist, key, err)
	}

	return url, nil
}

// Remove implements domain.UploadCoordinator. Blob deletion comes
// first; if it fails the record stays and the storage error surfaces
// instead of being swallowed.
func (c *UploadCoordinatorImpl) Remove(ctx context.Context, url string, deleteRecord func(ctx context.Context) error) error {
	key, ok := c.store.KeyForURL(url)
	if !ok {
		return fmt.Errorf("%w: unrecognized object url %q", domain.ErrStorage, url)
	}

	if err := c.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	return deleteRecord(ctx)
}

// objectKey builds a collision-resistant object name. Reusing the raw
// client filename would let a same-name upload overwrite an earlier
// object, so the name is qualified with a fresh UUID and only the
// extension survives.
func (c *UploadCoordinatorImpl) objectKey(prefix, filename string) string {
	ext := filepath.Ext(filename)
	if prefix != "" {
		return fmt.Sprintf("%s/%s%s", prefix, uuid.New(), ext)
	}
	return fmt.Sprintf("%s%s", uuid.New(), ext)
}
