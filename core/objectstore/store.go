package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"object-gateway/core/retry"
	"object-gateway/core/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// HealthKey is the object the health probe writes (before prefixing).
	HealthKey = "txtxtxtxt1"
	// DefaultPresignExpiry is used when a caller asks for a non-positive expiry.
	DefaultPresignExpiry = time.Hour
	// MaxPresignExpiry is the longest lifetime SigV4 presigned URLs accept.
	MaxPresignExpiry = 7 * 24 * time.Hour
)

// HealthMarker is the fixed payload written by Health.
var HealthMarker = []byte("_t@@@1")

var (
	// ErrNoBucket is returned when neither a default nor a caller bucket is known.
	ErrNoBucket = errors.New("no bucket configured")
	// ErrInvalidExpiry is returned for presign lifetimes above MaxPresignExpiry.
	ErrInvalidExpiry = errors.New("presign expiry exceeds 7 days")
)

// Store adapts a vendor storage client to the gateway's operation surface.
// It owns the client handle and replaces it when an operation fails.
type Store struct {
	cfg       storage.Config
	open      storage.Opener
	logger    *zap.Logger
	observers []Observer

	mu      sync.RWMutex
	client  storage.Client
	reopens singleflight.Group
}

// Option configures a Store.
type Option func(*Store)

// WithObserver registers an observer for completed operations and reopens.
func WithObserver(o Observer) Option {
	return func(s *Store) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// New opens the first client handle and returns the store.
func New(cfg storage.Config, open storage.Opener, logger *zap.Logger, opts ...Option) (*Store, error) {
	if open == nil {
		open = storage.NewClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		cfg:    cfg,
		open:   open,
		logger: logger.Named("objectstore"),
	}
	for _, opt := range opts {
		opt(s)
	}

	client, err := open(cfg)
	if err != nil {
		s.logger.Error("Failed to connect to storage",
			zap.String("endpoint", cfg.Endpoint),
			zap.String("region", cfg.Region),
			zap.Error(err))
		return nil, fmt.Errorf("open storage client: %w", err)
	}
	s.client = client
	return s, nil
}

// Key returns the effective storage key for name.
func (s *Store) Key(name string) string {
	if s.cfg.PrefixPath != "" {
		return s.cfg.PrefixPath + "/" + name
	}
	return name
}

// Bucket returns the bucket an operation will use. The configured default
// wins; the caller's bucket only applies when no default exists.
func (s *Store) Bucket(bucket string) string {
	if s.cfg.Bucket != "" {
		return s.cfg.Bucket
	}
	return bucket
}

// Reopen replaces the client handle. On failure the old handle is kept.
// Concurrent callers share a single reopen.
func (s *Store) Reopen() {
	_, _, _ = s.reopens.Do("reopen", func() (interface{}, error) {
		s.reopen()
		return nil, nil
	})
}

func (s *Store) reopen() {
	client, err := s.open(s.cfg)
	for _, o := range s.observers {
		o.ClientReopened(err)
	}
	if err != nil {
		s.logger.Error("Failed to reopen storage client",
			zap.String("endpoint", s.cfg.Endpoint),
			zap.String("region", s.cfg.Region),
			zap.Error(err))
		return
	}

	s.mu.Lock()
	s.client = client
	s.mu.Unlock()
	s.logger.Debug("Storage client reopened", zap.String("endpoint", s.cfg.Endpoint))
}

func (s *Store) handle() storage.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}

// BucketExists probes the bucket. Errors are logged and reported as false.
func (s *Store) BucketExists(ctx context.Context, bucket string) bool {
	bucket = s.Bucket(bucket)
	s.logger.Debug("Checking bucket", zap.String("bucket", bucket))

	exists, err := s.handle().BucketExists(ctx, bucket)
	if err != nil {
		s.logger.Error("Bucket check failed", zap.String("bucket", bucket), zap.Error(err))
		return false
	}
	return exists
}

// EnsureBucket creates the bucket (private) when the probe says it is missing.
func (s *Store) EnsureBucket(ctx context.Context, bucket string) error {
	bucket = s.Bucket(bucket)
	if bucket == "" {
		return ErrNoBucket
	}
	if s.BucketExists(ctx, bucket) {
		return nil
	}

	if err := s.handle().MakeBucket(ctx, bucket); err != nil {
		return err
	}
	s.logger.Info("Created bucket", zap.String("bucket", bucket))
	return nil
}

// Put uploads data under name, creating the bucket first if needed.
// Failed attempts reopen the client and pause before the next one.
func (s *Store) Put(ctx context.Context, bucket, name string, data []byte) error {
	bucket, key := s.Bucket(bucket), s.Key(name)
	ev := s.begin(OpPut, bucket, key)
	ev.Size = int64(len(data))

	if bucket == "" {
		s.finish(ev, ErrNoBucket)
		return ErrNoBucket
	}

	err := retry.Do(ctx, func(ctx context.Context) error {
		ev.Attempts++
		if err := s.EnsureBucket(ctx, bucket); err != nil {
			return err
		}
		return s.handle().PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)))
	}, s.retryOptions(OpPut, bucket, key, s.cfg.PutAttempts)...)

	s.finish(ev, err)
	return err
}

// Get downloads the full content of name. After the attempts are used up it
// returns nil and false instead of an error; missing objects are not retried.
func (s *Store) Get(ctx context.Context, bucket, name string) ([]byte, bool) {
	data, err := s.Fetch(ctx, bucket, name)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Fetch is Get with the failure kept. Missing objects come back as an error
// matching storage.IsNotFound and are not retried.
func (s *Store) Fetch(ctx context.Context, bucket, name string) ([]byte, error) {
	bucket, key := s.Bucket(bucket), s.Key(name)
	ev := s.begin(OpGet, bucket, key)

	var data []byte
	err := retry.Do(ctx, func(ctx context.Context) error {
		ev.Attempts++
		rc, err := s.handle().GetObject(ctx, bucket, key)
		if err != nil {
			if storage.IsNotFound(err) {
				return retry.Fatal(err)
			}
			return err
		}
		defer rc.Close()

		data, err = io.ReadAll(rc)
		if err != nil {
			return fmt.Errorf("read object %s: %w", key, err)
		}
		return nil
	}, s.retryOptions(OpGet, bucket, key, s.cfg.GetAttempts)...)

	ev.Size = int64(len(data))
	s.finish(ev, err)
	if err != nil {
		if storage.IsNotFound(err) {
			s.logger.Debug("Object not found", zap.String("bucket", bucket), zap.String("key", key))
		} else {
			s.logger.Error("Giving up on object download", zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
		}
		return nil, err
	}
	return data, nil
}

// Remove deletes name. Failures are logged and never surfaced.
func (s *Store) Remove(ctx context.Context, bucket, name string) {
	bucket, key := s.Bucket(bucket), s.Key(name)
	ev := s.begin(OpRemove, bucket, key)
	ev.Attempts = 1

	err := s.handle().RemoveObject(ctx, bucket, key)
	if err != nil {
		s.logger.Error("Failed to remove object", zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
	}
	s.finish(ev, err)
}

// Exists reports whether name is present. Not-found and every other error
// both yield false.
func (s *Store) Exists(ctx context.Context, bucket, name string) bool {
	bucket, key := s.Bucket(bucket), s.Key(name)
	ev := s.begin(OpExists, bucket, key)
	ev.Attempts = 1

	info, err := s.handle().StatObject(ctx, bucket, key)
	switch {
	case err == nil:
		ev.Size = info.Size
		s.finish(ev, nil)
		return true
	case storage.IsNotFound(err):
		s.logger.Debug("Object does not exist", zap.String("bucket", bucket), zap.String("key", key))
		s.finish(ev, nil)
	default:
		s.logger.Error("Existence check failed", zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
		s.finish(ev, err)
	}
	return false
}

// Stat returns the object's metadata, or false when it cannot be read.
func (s *Store) Stat(ctx context.Context, bucket, name string) (storage.ObjectInfo, bool) {
	bucket, key := s.Bucket(bucket), s.Key(name)
	ev := s.begin(OpStat, bucket, key)
	ev.Attempts = 1

	info, err := s.handle().StatObject(ctx, bucket, key)
	if err != nil {
		if storage.IsNotFound(err) {
			s.finish(ev, nil)
			return storage.ObjectInfo{}, false
		}
		s.logger.Error("Failed to stat object", zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
		s.finish(ev, err)
		return storage.ObjectInfo{}, false
	}

	info.Key = name
	ev.Size = info.Size
	s.finish(ev, nil)
	return info, true
}

// List returns the objects under dir. Keys come back relative to the
// configured prefix so they can be fed straight into Get.
func (s *Store) List(ctx context.Context, bucket, dir string, recursive bool) ([]storage.ObjectInfo, error) {
	bucket, prefix := s.Bucket(bucket), s.Key(dir)
	ev := s.begin(OpList, bucket, prefix)
	ev.Attempts = 1

	objects, err := s.handle().ListObjects(ctx, bucket, prefix, recursive)
	s.finish(ev, err)
	if err != nil {
		s.logger.Error("Failed to list objects", zap.String("bucket", bucket), zap.String("prefix", prefix), zap.Error(err))
		return nil, err
	}

	for i := range objects {
		objects[i].Key = s.relative(objects[i].Key)
	}
	return objects, nil
}

// PresignedURL returns a time-limited download URL for name. Each failed
// attempt reopens the client; after the last one it returns "" and false.
// An expiry above MaxPresignExpiry fails at once without a retry.
func (s *Store) PresignedURL(ctx context.Context, bucket, name string, expiry time.Duration) (string, bool) {
	bucket, key := s.Bucket(bucket), s.Key(name)
	ev := s.begin(OpPresign, bucket, key)
	if expiry <= 0 {
		expiry = DefaultPresignExpiry
	}

	var signed string
	err := retry.Do(ctx, func(ctx context.Context) error {
		ev.Attempts++
		if expiry > MaxPresignExpiry {
			return retry.Fatal(ErrInvalidExpiry)
		}
		u, err := s.handle().PresignedGetObject(ctx, bucket, key, expiry)
		if err != nil {
			return err
		}
		signed = u
		return nil
	}, s.retryOptions(OpPresign, bucket, key, s.cfg.PresignAttempts)...)

	s.finish(ev, err)
	if err != nil {
		s.logger.Error("Giving up on presigned URL", zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
		return "", false
	}
	return signed, true
}

// Health writes the fixed marker object into the default bucket, creating
// the bucket first if necessary.
func (s *Store) Health(ctx context.Context) error {
	bucket, key := s.cfg.Bucket, s.Key(HealthKey)
	ev := s.begin(OpHealth, bucket, key)
	ev.Attempts = 1
	ev.Size = int64(len(HealthMarker))

	err := s.health(ctx, bucket, key)
	s.finish(ev, err)
	if err != nil {
		s.logger.Error("Health check failed", zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
	}
	return err
}

func (s *Store) health(ctx context.Context, bucket, key string) error {
	if bucket == "" {
		return ErrNoBucket
	}
	if err := s.EnsureBucket(ctx, bucket); err != nil {
		return fmt.Errorf("ensure bucket %s: %w", bucket, err)
	}
	return s.handle().PutObject(ctx, bucket, key, bytes.NewReader(HealthMarker), int64(len(HealthMarker)))
}

func (s *Store) retryOptions(op Operation, bucket, key string, attempts int) []retry.Option {
	return []retry.Option{
		retry.WithAttempts(attempts),
		retry.WithDelay(s.cfg.RetryDelay()),
		retry.WithOnFailure(func(attempt int, err error) {
			s.logger.Error("Storage operation failed",
				zap.String("operation", string(op)),
				zap.String("bucket", bucket),
				zap.String("key", key),
				zap.Int("attempt", attempt),
				zap.Error(err))
			s.Reopen()
		}),
	}
}

func (s *Store) relative(key string) string {
	if s.cfg.PrefixPath == "" {
		return key
	}
	return strings.TrimPrefix(key, s.cfg.PrefixPath+"/")
}
