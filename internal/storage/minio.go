package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"ecobrands/internal/config"
)

// publicReadPolicy lets anonymous clients GET objects; listing and writes stay private.
const publicReadPolicy = `{
  "Version": "2012-10-17",
  "Statement": [{
    "Effect": "Allow",
    "Principal": {"AWS": ["*"]},
    "Action": ["s3:GetObject"],
    "Resource": ["arn:aws:s3:::%s/*"]
  }]
}`

const bucketSetupTimeout = 10 * time.Second

// minioStorage writes brand images to one bucket on an S3-compatible backend.
// It is safe for concurrent use.
type minioStorage struct {
	client *minio.Client
	bucket string
	log    *zap.Logger
}

func validateMinIO(cfg config.MinIOConfig) error {
	switch {
	case cfg.Endpoint == "":
		return errors.New("minio endpoint is required")
	case cfg.AccessKey == "" || cfg.SecretKey == "":
		return errors.New("minio credentials are required")
	case cfg.Bucket == "":
		return errors.New("minio bucket is required")
	}
	return nil
}

// NewMinIO connects to the bucket in cfg, creating it when missing. A bucket without
// a policy is made publicly readable so stored image URLs resolve for anonymous clients.
func NewMinIO(ctx context.Context, cfg config.MinIOConfig, log *zap.Logger) (Storage, error) {
	if err := validateMinIO(cfg); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("component", "storage"), zap.String("bucket", cfg.Bucket))

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	m := &minioStorage{client: cli, bucket: cfg.Bucket, log: log}
	setupCtx, cancel := context.WithTimeout(ctx, bucketSetupTimeout)
	defer cancel()
	if err := m.ensureBucket(setupCtx, cfg.Region); err != nil {
		return nil, err
	}
	log.Info("object storage ready", zap.String("endpoint", cfg.Endpoint))
	return m, nil
}

func (m *minioStorage) ensureBucket(ctx context.Context, region string) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
		m.log.Info("bucket created")
	}

	policy, err := m.client.GetBucketPolicy(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("read bucket policy: %w", err)
	}
	if policy != "" {
		return nil
	}
	if err := m.client.SetBucketPolicy(ctx, m.bucket, fmt.Sprintf(publicReadPolicy, m.bucket)); err != nil {
		return fmt.Errorf("set bucket policy: %w", err)
	}
	m.log.Info("public read policy applied")
	return nil
}

// Put streams r to key.
func (m *minioStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	info, err := m.client.PutObject(ctx, m.bucket, key, r, opt.Size, minio.PutObjectOptions{
		ContentType:  opt.ContentType,
		CacheControl: opt.CacheControl,
		UserMetadata: opt.Metadata,
	})
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("put object %q: %w", key, err)
	}
	return ObjectInfo{
		Key:         key,
		Size:        info.Size,
		ETag:        info.ETag,
		ContentType: opt.ContentType,
	}, nil
}

func (m *minioStorage) Bucket() string { return m.bucket }
