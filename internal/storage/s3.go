package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Config holds object storage settings
type Config struct {
	Bucket    string
	Region    string
	KeyPrefix string
	// PublicBaseURL overrides the default virtual-hosted URL, for CDN fronts
	PublicBaseURL string
}

// Enabled reports whether uploads can be accepted
func (c Config) Enabled() bool {
	return c.Bucket != ""
}

// ObjectStore uploads blobs and returns their public URLs
type ObjectStore interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// S3Store stores objects in an S3 bucket
type S3Store struct {
	client *s3.Client
	config Config
	logger *slog.Logger
}

// NewS3Store creates a store using the ambient AWS credential chain
func NewS3Store(ctx context.Context, config Config, logger *slog.Logger) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if config.Region != "" {
		opts = append(opts, awsconfig.WithRegion(config.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Store{
		client: s3.NewFromConfig(awsCfg),
		config: config,
		logger: logger,
	}, nil
}

// Upload stores the body under a timestamped key and returns the object URL.
// The caller is expected to persist the returned URL; an upload whose metadata
// row is never written leaves an orphaned object behind.
func (s *S3Store) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := s.objectKey(filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object: %w", err)
	}

	url := s.objectURL(key)
	s.logger.InfoContext(ctx, "Object uploaded",
		"bucket", s.config.Bucket,
		"key", key)

	return url, nil
}

// objectKey builds a collision-free key keeping the original extension
func (s *S3Store) objectKey(filename string) string {
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.New().String(), path.Ext(filename))
	if s.config.KeyPrefix != "" {
		return path.Join(s.config.KeyPrefix, name)
	}
	return name
}

func (s *S3Store) objectURL(key string) string {
	if s.config.PublicBaseURL != "" {
		return fmt.Sprintf("%s/%s", s.config.PublicBaseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.Bucket, s.config.Region, key)
}
