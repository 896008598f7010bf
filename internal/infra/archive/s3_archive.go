package archive

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/career-radar/internal/domain/insight"
)

// S3Archive uploads exports to any S3-compatible object store.
type S3Archive struct {
	client *minio.Client
	bucket string
	prefix string
	logger *slog.Logger
}

// Options configures NewS3Archive.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Prefix    string
}

// NewS3Archive constructs the archive adapter.
func NewS3Archive(opts Options, logger *slog.Logger) (*S3Archive, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := minio.New(sanitizeEndpoint(opts.Endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure:       strings.HasPrefix(strings.ToLower(opts.Endpoint), "https"),
		Region:       opts.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}
	return &S3Archive{
		client: client,
		bucket: opts.Bucket,
		prefix: strings.Trim(opts.Prefix, "/"),
		logger: logger.With("component", "archive.s3"),
	}, nil
}

func (a *S3Archive) ensureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err == nil && exists {
		return nil
	}
	err = a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "BucketAlreadyOwnedByYou" {
			return nil
		}
		return err
	}
	a.logger.Info("archive bucket created", "bucket", a.bucket)
	return nil
}

// Put uploads data under the configured prefix.
func (a *S3Archive) Put(ctx context.Context, key string, data []byte, mimeType string) (insight.StoredObject, error) {
	if err := a.ensureBucket(ctx); err != nil {
		return insight.StoredObject{}, err
	}
	objectKey := a.objectKey(key)
	info, err := a.client.PutObject(ctx, a.bucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:      mimeType,
		DisableMultipart: true,
	})
	if err != nil {
		return insight.StoredObject{}, err
	}
	return insight.StoredObject{Key: objectKey, Size: info.Size, ETag: info.ETag}, nil
}

func (a *S3Archive) objectKey(key string) string {
	if a.prefix == "" {
		return key
	}
	return path.Join(a.prefix, key)
}

func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if i := strings.Index(raw, "/"); i >= 0 {
		raw = raw[:i]
	}
	return raw
}

var _ insight.Archive = (*S3Archive)(nil)
