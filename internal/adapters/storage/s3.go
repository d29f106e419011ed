// Package storage holds adapters for external object stores.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/inkwellhq/inkwell_backend/internal/core/ports/services"
	"github.com/inkwellhq/inkwell_backend/internal/platform/config"
)

// S3MediaStore uploads journal and profile images to an S3-compatible bucket
// behind a custom endpoint (R2 and friends work the same way).
type S3MediaStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

var _ services.MediaSvcFacade = (*S3MediaStore)(nil)

// NewS3MediaStore builds the client from static credentials and the custom
// endpoint, path-style addressing.
func NewS3MediaStore(cfg *config.Config) *S3MediaStore {
	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.MediaAccessKey, cfg.MediaSecretKey, ""),
		Region:      cfg.MediaRegion,
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.MediaEndpoint)
		o.UsePathStyle = true
	})

	return &S3MediaStore{
		client:    client,
		bucket:    cfg.MediaBucket,
		publicURL: strings.TrimSuffix(cfg.MediaPublicURL, "/"),
	}
}

// Upload stores the object under folder with a random name that keeps the
// original extension, and returns its public URL and key.
func (s *S3MediaStore) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader, size int64) (string, string, error) {
	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("%s/%d-%s%s", folder, time.Now().UnixMilli(), uuid.NewString(), ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	return s.publicURL + "/" + key, key, nil
}

// Delete removes the object. S3 DeleteObject on an absent key succeeds, which
// gives us idempotence for free.
func (s *S3MediaStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}
