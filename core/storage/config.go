package storage

import (
	"fmt"
	"time"
)

const (
	// DriverMinio selects the MinIO client (works for MinIO, TOS and most S3-compatible services).
	DriverMinio = "minio"
	// DriverS3 selects the AWS SDK v2 client.
	DriverS3 = "s3"
)

// Config holds configuration for the storage provider.
type Config struct {
	// Driver selects the vendor client implementation (minio, s3).
	Driver string `mapstructure:"driver" default:"minio"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// Bucket is the default bucket. When set it wins over any caller-supplied bucket.
	Bucket string `mapstructure:"bucket" default:"objects"`
	// PrefixPath is prepended to every object key as "<prefix>/<key>".
	PrefixPath string `mapstructure:"prefix_path" default:""`
	// PathStyle forces path-style bucket addressing.
	PathStyle bool `mapstructure:"path_style" default:"true"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// PutAttempts bounds the number of upload attempts.
	PutAttempts int `mapstructure:"put_attempts" default:"1"`
	// GetAttempts bounds the number of download attempts.
	GetAttempts int `mapstructure:"get_attempts" default:"1"`
	// PresignAttempts bounds the number of presign attempts.
	PresignAttempts int `mapstructure:"presign_attempts" default:"10"`
	// RetryDelayMillis is the fixed pause between attempts.
	RetryDelayMillis int `mapstructure:"retry_delay_ms" default:"1000"`
}

// RetryDelay returns the pause between attempts as a duration.
func (c Config) RetryDelay() time.Duration {
	if c.RetryDelayMillis < 0 {
		return 0
	}
	return time.Duration(c.RetryDelayMillis) * time.Millisecond
}

// Validate reports configuration values the clients cannot work with.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverMinio, DriverS3:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Driver)
	}
	if c.Endpoint == "" && c.Driver == DriverMinio {
		return fmt.Errorf("storage endpoint is required for the %s driver", c.Driver)
	}
	if c.PutAttempts < 1 || c.GetAttempts < 1 || c.PresignAttempts < 1 {
		return fmt.Errorf("storage attempts must be at least 1 (put=%d get=%d presign=%d)",
			c.PutAttempts, c.GetAttempts, c.PresignAttempts)
	}
	return nil
}
