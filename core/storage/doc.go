// Package storage provides an abstraction layer for object storage services.
//
// It hides the vendor SDK behind a small Client interface so the rest of the
// gateway never imports minio-go or the AWS SDK directly. Two drivers exist:
//
//   - minio: the MinIO Go client. Works against MinIO, Volcengine TOS and
//     most S3-compatible endpoints.
//   - s3: the AWS SDK v2 client, including its presign client.
//
// Both drivers map missing buckets and keys onto ErrNotFound so callers can
// use IsNotFound regardless of backend.
//
// # Client Interface
//
// The Client interface makes storage interactions easy to mock in unit tests
// (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, "objects")
package storage
