package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type minioClient struct {
	client *minio.Client
	region string
}

func newMinioClient(cfg Config) (*minioClient, error) {
	endpoint, secure := splitEndpoint(cfg.Endpoint, cfg.UseSSL)

	lookup := minio.BucketLookupAuto
	if cfg.PathStyle {
		lookup = minio.BucketLookupPath
	}

	c, err := minio.New(endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       secure,
		Region:       cfg.Region,
		Transport:    newTransport(cfg),
		BucketLookup: lookup,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	// Connection is lazy; the first request surfaces endpoint problems.
	return &minioClient{client: c, region: cfg.Region}, nil
}

func (c *minioClient) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	exists, err := c.client.BucketExists(ctx, bucketName)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket %s: %w", bucketName, err)
	}
	return exists, nil
}

func (c *minioClient) MakeBucket(ctx context.Context, bucketName string) error {
	// MinIO and TOS create buckets private unless a policy says otherwise.
	err := c.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: c.region})
	if err != nil {
		if isMinioBucketOwned(err) {
			return nil
		}
		return fmt.Errorf("failed to create bucket %s: %w", bucketName, err)
	}
	return nil
}

func (c *minioClient) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64) error {
	_, err := c.client.PutObject(ctx, bucketName, objectName, reader, objectSize, minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s in bucket %s: %w", objectName, bucketName, err)
	}
	return nil
}

func (c *minioClient) GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	obj, err := c.client.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, wrapMinioError(err, "get object %s from bucket %s", objectName, bucketName)
	}
	// minio defers the request until the first read; Stat forces it so that
	// missing objects fail here and not halfway through the caller's read.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, wrapMinioError(err, "get object %s from bucket %s", objectName, bucketName)
	}
	return obj, nil
}

func (c *minioClient) StatObject(ctx context.Context, bucketName, objectName string) (ObjectInfo, error) {
	info, err := c.client.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		return ObjectInfo{}, wrapMinioError(err, "stat object %s in bucket %s", objectName, bucketName)
	}
	return fromMinioInfo(info), nil
}

func (c *minioClient) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	if err := c.client.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object %s from bucket %s: %w", objectName, bucketName, err)
	}
	return nil
}

func (c *minioClient) ListObjects(ctx context.Context, bucketName, prefix string, recursive bool) ([]ObjectInfo, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: recursive,
	}

	var objects []ObjectInfo
	for info := range c.client.ListObjects(ctx, bucketName, opts) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list objects in bucket %s: %w", bucketName, info.Err)
		}
		objects = append(objects, fromMinioInfo(info))
	}
	return objects, nil
}

func (c *minioClient) PresignedGetObject(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	u, err := c.client.PresignedGetObject(ctx, bucketName, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign object %s in bucket %s: %w", objectName, bucketName, err)
	}
	return u.String(), nil
}

func fromMinioInfo(info minio.ObjectInfo) ObjectInfo {
	return ObjectInfo{
		Key:          info.Key,
		Size:         info.Size,
		ETag:         info.ETag,
		ContentType:  info.ContentType,
		LastModified: info.LastModified,
	}
}

// wrapMinioError maps 404-style responses onto ErrNotFound.
func wrapMinioError(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if isMinioNotFound(err) {
		return fmt.Errorf("%s: %w", msg, errors.Join(ErrNotFound, err))
	}
	return fmt.Errorf("failed to %s: %w", msg, err)
}

// isMinioBucketOwned reports a create that failed only because we already own
// the bucket. BucketAlreadyExists means another account owns it.
func isMinioBucketOwned(err error) bool {
	return minioErrorResponse(err).Code == "BucketAlreadyOwnedByYou"
}

func isMinioNotFound(err error) bool {
	resp := minioErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		return true
	}
	return resp.StatusCode == http.StatusNotFound
}

// minioErrorResponse is minio.ToErrorResponse that also looks through wrapped
// errors.
func minioErrorResponse(err error) minio.ErrorResponse {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp
	}
	return minio.ToErrorResponse(err)
}
