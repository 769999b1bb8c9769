package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/josptrra/be-rasadhana/domain"
)

// S3Store implements domain.BlobStore against an S3-compatible bucket
// (AWS S3 or MinIO). Objects are publicly readable; the public URL is
// derived deterministically from the base URL, bucket and key.
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// Options configures the S3 connection.
type Options struct {
	Region    string
	Endpoint  string // optional, for MinIO and friends
	AccessKey string
	SecretKey string
	Bucket    string
	// BaseURL is the public prefix objects are served from, without a
	// trailing slash, e.g. "https://storage.googleapis.com".
	BaseURL string
}

// NewS3Store builds the S3 client and returns the store.
func NewS3Store(ctx context.Context, opts Options) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{client: client, bucket: opts.Bucket, baseURL: opts.BaseURL}, nil
}

// Put implements domain.BlobStore
func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: put %s: %v", domain.ErrStorage, key, err)
	}

	return s.URL(key), nil
}

// Delete implements domain.BlobStore
func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: delete %s: %v", domain.ErrStorage, key, err)
	}
	return nil
}

// KeyForURL implements domain.BlobStore
func (s *S3Store) KeyForURL(url string) (string, bool) {
	prefix := s.baseURL + "/" + s.bucket + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}

// URL returns the public URL for an object key.
func (s *S3Store) URL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, key)
}

var _ domain.BlobStore = (*S3Store)(nil)
