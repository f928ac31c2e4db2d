// Package storage adaptador S3 compatible (minio-go) para los buckets de documentos y perfiles.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jhoicas/vitrina-api/internal/application/ports"
)

var _ ports.ObjectStorage = (*S3Storage)(nil)

// Config endpoint S3 (host[:port], sin path) y la base de las URLs públicas.
type Config struct {
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	PublicBaseURL string // ej. https://xyz.supabase.co/storage/v1/object/public
}

// S3Storage implementa ports.ObjectStorage sobre minio-go.
type S3Storage struct {
	cl         *minio.Client
	publicBase string
}

// NewS3 construye el cliente. Usa path-style: los buckets no son subdominios.
func NewS3(cfg Config) (*S3Storage, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("storage: endpoint es requerido")
	}
	cl, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       cfg.UseSSL,
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	return &S3Storage{cl: cl, publicBase: strings.TrimRight(cfg.PublicBaseURL, "/")}, nil
}

// Upload sube el stream; size -1 si no se conoce.
func (s *S3Storage) Upload(ctx context.Context, bucket, objectPath string, r io.Reader, size int64, contentType string) error {
	if size <= 0 {
		size = -1
	}
	_, err := s.cl.PutObject(ctx, bucket, objectPath, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", bucket, objectPath, err)
	}
	return nil
}

func (s *S3Storage) Remove(ctx context.Context, bucket, objectPath string) error {
	if err := s.cl.RemoveObject(ctx, bucket, objectPath, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove %s/%s: %w", bucket, objectPath, err)
	}
	return nil
}

func (s *S3Storage) PublicURL(bucket, objectPath string) string {
	return s.publicBase + "/" + bucket + "/" + strings.TrimLeft(objectPath, "/")
}
