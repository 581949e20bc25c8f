package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// ErrNotFound is returned when a bucket or object does not exist.
var ErrNotFound = errors.New("object not found")

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	ETag         string    `json:"etag,omitempty"`
	ContentType  string    `json:"content_type,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

// Client defines the interface for storage operations.
type Client interface {
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// MakeBucket creates a new private bucket.
	MakeBucket(ctx context.Context, bucketName string) error
	// PutObject uploads an object.
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64) error
	// GetObject downloads an object. The caller closes the reader.
	GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error)
	// StatObject returns object metadata, or ErrNotFound.
	StatObject(ctx context.Context, bucketName, objectName string) (ObjectInfo, error)
	// RemoveObject deletes an object from a bucket.
	RemoveObject(ctx context.Context, bucketName, objectName string) error
	// ListObjects lists objects under prefix.
	ListObjects(ctx context.Context, bucketName, prefix string, recursive bool) ([]ObjectInfo, error)
	// PresignedGetObject returns a time-limited download URL.
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error)
}

// Opener builds a Client from configuration. The object store calls it again
// whenever the handle has to be reopened.
type Opener func(cfg Config) (Client, error)

// NewClient creates a storage client for the configured driver.
func NewClient(cfg Config) (Client, error) {
	switch cfg.Driver {
	case DriverMinio, "":
		c, err := newMinioClient(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	case DriverS3:
		c, err := newS3Client(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// IsNotFound reports whether err means the bucket or object is missing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || isS3NotFound(err) || isMinioNotFound(err)
}

// splitEndpoint strips the scheme from an endpoint. An explicit scheme wins
// over the UseSSL flag.
func splitEndpoint(endpoint string, useSSL bool) (string, bool) {
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		return strings.TrimPrefix(endpoint, "https://"), true
	case strings.HasPrefix(endpoint, "http://"):
		return strings.TrimPrefix(endpoint, "http://"), false
	default:
		return endpoint, useSSL
	}
}

// newTransport creates an HTTP transport with strict timeouts so a dead
// endpoint fails fast instead of hanging the retry loop.
func newTransport(cfg Config) *http.Transport {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}
}
