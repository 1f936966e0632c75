package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"voltride-booking/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// ObjectStore persists uploaded document and photo images and returns a
// publicly servable URL.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type s3Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
	log           *zap.Logger
}

// NewS3Store builds an S3-compatible object store. A custom endpoint makes
// it work against R2/MinIO style providers.
func NewS3Store(cfg utils.StorageConfig, log *zap.Logger) (ObjectStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("configure object store client: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &s3Store{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		log:           log.With(zap.String("storage", "s3")),
	}, nil
}

func (s *s3Store) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.log.Error("Failed to store object",
			zap.Error(err),
			zap.String("key", key),
		)
		return "", fmt.Errorf("store object %s: %w", key, err)
	}

	return s.publicBaseURL + "/" + key, nil
}
