package ports

import (
	"context"
	"io"
)

// ObjectStorage puerto de salida hacia el almacenamiento de objetos (buckets de Supabase Storage).
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, objectPath string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, bucket, objectPath string) error
	// PublicURL arma la URL pública de un objeto en un bucket público.
	PublicURL(bucket, objectPath string) string
}
