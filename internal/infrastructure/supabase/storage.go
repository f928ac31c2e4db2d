package supabase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/jhoicas/vitrina-api/internal/application/ports"
)

var _ ports.ObjectStorage = (*StorageClient)(nil)

// StorageClient adaptador de la API REST de Supabase Storage (/storage/v1/object).
// Usa la llave de servicio si está configurada para no depender de políticas de bucket anónimas.
type StorageClient struct {
	client *Client
}

// NewStorageClient construye el adaptador REST.
func NewStorageClient(c *Client) *StorageClient {
	return &StorageClient{client: c}
}

// Upload sube el objeto sin sobrescribir (x-upsert: false).
func (s *StorageClient) Upload(ctx context.Context, bucket, objectPath string, r io.Reader, size int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	headers := map[string]string{
		"Content-Type": contentType,
		"x-upsert":     "false",
	}
	if size > 0 {
		headers["Content-Length"] = strconv.FormatInt(size, 10)
	}
	key := s.client.privilegedKey()
	body, status, err := s.client.request(ctx, http.MethodPost, s.objectURL(bucket, objectPath), r, key, "", headers)
	if err != nil {
		return fmt.Errorf("upload %s/%s: %w", bucket, objectPath, err)
	}
	if status >= 400 {
		return fmt.Errorf("upload %s/%s: %w", bucket, objectPath, parseError(body, status))
	}
	return nil
}

// Remove borra el objeto; si ya no existe no es error.
func (s *StorageClient) Remove(ctx context.Context, bucket, objectPath string) error {
	key := s.client.privilegedKey()
	body, status, err := s.client.request(ctx, http.MethodDelete, s.objectURL(bucket, objectPath), nil, key, "", nil)
	if err != nil {
		return fmt.Errorf("remove %s/%s: %w", bucket, objectPath, err)
	}
	if status >= 400 && status != http.StatusNotFound {
		return fmt.Errorf("remove %s/%s: %w", bucket, objectPath, parseError(body, status))
	}
	return nil
}

// PublicURL <SUPABASE_URL>/storage/v1/object/public/<bucket>/<path>.
func (s *StorageClient) PublicURL(bucket, objectPath string) string {
	return PublicObjectURL(s.client.baseURL, bucket, objectPath)
}

func (s *StorageClient) objectURL(bucket, objectPath string) string {
	return s.client.storageURL + "/object/" + bucket + "/" + strings.TrimLeft(objectPath, "/")
}

// PublicObjectURL URL pública de un objeto en un bucket público del proyecto.
func PublicObjectURL(projectURL, bucket, objectPath string) string {
	return strings.TrimRight(projectURL, "/") + "/storage/v1/object/public/" + bucket + "/" + strings.TrimLeft(objectPath, "/")
}
