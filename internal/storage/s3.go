package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/1conorsteward/Appointment-Now/internal/config"
)

// AttachmentStore persists appointment PDFs in an S3 bucket. Rows keep
// only the object key; the store never interprets the object contents.
type AttachmentStore struct {
	client *s3.Client
	bucket string
}

func NewAttachmentStore(cfg *config.Config) *AttachmentStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				cfg.S3AccessKey,
				cfg.S3SecretKey,
				"",
			),
		),
	}

	// Custom endpoint for MinIO or localstack in development.
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &AttachmentStore{
		client: s3.New(opts),
		bucket: cfg.S3Bucket,
	}
}

// NewKey produces a fresh object key for an appointment's attachment.
func NewKey(appointmentID uint) string {
	return fmt.Sprintf("attachments/%d/%s.pdf", appointmentID, uuid.New().String())
}

func (s *AttachmentStore) Put(ctx context.Context, key string, body io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String("application/pdf"),
	})
	return err
}

// Get streams an attachment back. The caller owns closing the reader.
func (s *AttachmentStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}

func (s *AttachmentStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
