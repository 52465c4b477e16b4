// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so scenario files can
// be read from AWS S3 or a self-hosted MinIO instance, and so storage can be
// mocked in tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	obj, err := client.GetObject(ctx, cfg.Storage.Bucket, "move.yaml", minio.GetObjectOptions{})
package storage
