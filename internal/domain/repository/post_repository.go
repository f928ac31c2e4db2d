package repository

import (
	"context"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
)

// PostRepository define el puerto de persistencia para Post (DIP).
type PostRepository interface {
	// Create inserta y completa IDPost y FechaCreacion.
	Create(ctx context.Context, post *entity.Post) error
	ListActiveByUser(ctx context.Context, userID string) ([]*entity.Post, error)
	ListActive(ctx context.Context, limit, offset int) ([]*entity.PostListing, error)
}
