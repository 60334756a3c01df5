package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"movie-catalog/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// maxImportObject bounds the size of a legacy import file read from storage.
const maxImportObject = 16 << 20

// ObjectStore reads legacy import files.
type ObjectStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

type MinIOStore struct {
	client *minio.Client
	bucket string
	logger *logrus.Logger
}

func NewMinIOStore(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOStore, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	return &MinIOStore{
		client: minioClient,
		bucket: cfg.BucketName,
		logger: logger,
	}, nil
}

// Get downloads an object from the import bucket.
func (s *MinIOStore) Get(ctx context.Context, key string) ([]byte, error) {
	key = strings.TrimPrefix(key, s.bucket+"/")

	object, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open object %s: %w", key, err)
	}
	defer object.Close()

	data, err := io.ReadAll(io.LimitReader(object, maxImportObject+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	if len(data) > maxImportObject {
		return nil, fmt.Errorf("object %s exceeds %d bytes", key, maxImportObject)
	}

	s.logger.WithFields(logrus.Fields{
		"bucket": s.bucket,
		"key":    key,
		"bytes":  len(data),
	}).Info("Legacy import object downloaded")

	return data, nil
}
