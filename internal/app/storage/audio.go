package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// AudioArchive retains a copy of accepted uploads in object storage so a
// transcript can be re-run without asking the user for the file again.
type AudioArchive interface {
	Store(ctx context.Context, data []byte, fileName, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Config holds object storage connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioArchive implements AudioArchive on MinIO / any S3-compatible store.
type MinioArchive struct {
	client *minio.Client
	bucket string
}

// NewMinioArchive connects to the object store and ensures the bucket exists.
func NewMinioArchive(ctx context.Context, cfg Config) (*MinioArchive, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinioArchive{client: client, bucket: cfg.Bucket}, nil
}

// Store writes the audio bytes under a timestamped unique key and returns
// the key.
func (a *MinioArchive) Store(ctx context.Context, data []byte, fileName, contentType string) (string, error) {
	key := fmt.Sprintf("uploads/%d-%s%s", time.Now().Unix(), uuid.New().String()[:8], filepath.Ext(fileName))

	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive upload: %w", err)
	}
	return key, nil
}

// Delete removes an archived upload.
func (a *MinioArchive) Delete(ctx context.Context, key string) error {
	if err := a.client.RemoveObject(ctx, a.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete archived upload: %w", err)
	}
	return nil
}
