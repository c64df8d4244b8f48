package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/arielstudio/nail-scheduler/internal/config"
)

// Uploader publica objetos num bucket S3 (ou compatível: R2, MinIO).
type Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewUploader(cfg config.S3Config) *Uploader {
	opts := s3.Options{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		),
	}

	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return &Uploader{
		client:        s3.New(opts),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

// Upload grava o objeto e devolve a URL pública.
func (u *Uploader) Upload(
	ctx context.Context,
	key string,
	body []byte,
	contentType string,
) (string, error) {

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	if u.publicBaseURL != "" {
		return u.publicBaseURL + "/" + key, nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", u.bucket, key), nil
}
