// Package storage keeps uploaded ad images in a MinIO (S3-compatible)
// bucket and hands back the public object URL.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

type MinIOStorage struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

func NewMinIOStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool, logger *zap.Logger) (*MinIOStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", endpoint, err)
	}

	err = client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{})
	if err != nil {
		exists, existsErr := client.BucketExists(context.Background(), bucket)
		if existsErr != nil || !exists {
			return nil, fmt.Errorf("failed to make/verify bucket %s: (make: %v / exists_check: %v)", bucket, err, existsErr)
		}
		logger.Info("MinIO bucket already exists", zap.String("bucket", bucket))
	} else {
		logger.Info("MinIO bucket created", zap.String("bucket", bucket))
	}

	return &MinIOStorage{client: client, bucket: bucket, logger: logger}, nil
}

// Upload stores the blob under a fresh object key, keeping the original
// extension, and returns the object URL.
func (s *MinIOStorage) Upload(ctx context.Context, originalFileName string, data []byte) (string, error) {
	ext := filepath.Ext(originalFileName)
	objectKey := fmt.Sprintf("images/%s%s", uuid.New().String(), ext)

	info, err := s.client.PutObject(ctx, s.bucket, objectKey,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		s.logger.Error("MinIO upload failed",
			zap.String("bucket", s.bucket), zap.String("key", objectKey), zap.Error(err))
		return "", fmt.Errorf("failed to upload object %s to bucket %s: %w", objectKey, s.bucket, err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, objectKey)
	s.logger.Info("image uploaded",
		zap.String("key", info.Key), zap.Int64("size", info.Size), zap.String("url", url))
	return url, nil
}
