package objects

import (
	"context"
	"time"

	"object-gateway/core/objectstore"
	"object-gateway/core/storage"

	"go.uber.org/zap"
)

// Service exposes the object store operations to the HTTP layer.
type Service struct {
	store         *objectstore.Store
	logger        *zap.Logger
	presignExpiry time.Duration
}

// NewService creates a new objects service.
func NewService(store *objectstore.Store, logger *zap.Logger, presignExpiry time.Duration) *Service {
	if presignExpiry <= 0 {
		presignExpiry = objectstore.DefaultPresignExpiry
	}
	return &Service{
		store:         store,
		logger:        logger,
		presignExpiry: presignExpiry,
	}
}

// Put stores data under key.
func (s *Service) Put(ctx context.Context, bucket, key string, data []byte) error {
	return s.store.Put(ctx, bucket, key, data)
}

// Get returns the object content. Missing objects match storage.IsNotFound.
func (s *Service) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	return s.store.Fetch(ctx, bucket, key)
}

// Remove deletes key. It never fails from the caller's point of view.
func (s *Service) Remove(ctx context.Context, bucket, key string) {
	s.store.Remove(ctx, bucket, key)
}

// Exists reports whether key is present.
func (s *Service) Exists(ctx context.Context, bucket, key string) bool {
	return s.store.Exists(ctx, bucket, key)
}

// Stat returns object metadata.
func (s *Service) Stat(ctx context.Context, bucket, key string) (storage.ObjectInfo, bool) {
	return s.store.Stat(ctx, bucket, key)
}

// List returns the objects under dir.
func (s *Service) List(ctx context.Context, bucket, dir string, recursive bool) ([]storage.ObjectInfo, error) {
	return s.store.List(ctx, bucket, dir, recursive)
}

// PresignedURL returns a download URL. A non-positive expiry uses the
// service default.
func (s *Service) PresignedURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, bool) {
	if expiry <= 0 {
		expiry = s.presignExpiry
	}
	return s.store.PresignedURL(ctx, bucket, key, expiry)
}
