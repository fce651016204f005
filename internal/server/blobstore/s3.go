package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "github.com/vibesbook/backend/internal/server/config"
)

// S3Store implements ObjectStore on top of an S3-compatible backend
// (AWS S3 or MinIO).
type S3Store struct {
	client       *s3.Client
	bucket       string
	baseEndpoint string
}

// NewS3Store builds a client from static credentials and the configured
// base endpoint.
func NewS3Store(ctx context.Context, cfg *sc.Config) (*S3Store, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return &S3Store{
		client:       client,
		bucket:       cfg.S3Bucket,
		baseEndpoint: cfg.S3BaseEndpoint,
	}, nil
}

func (s *S3Store) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("object storage error: %w", err)
	}
	return s.publicURL(key), nil
}

func (s *S3Store) publicURL(key string) string {
	base := strings.TrimSuffix(s.baseEndpoint, "/")
	return fmt.Sprintf("%s/%s/%s", base, s.bucket, key)
}
