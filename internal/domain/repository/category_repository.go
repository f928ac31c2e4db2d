package repository

import (
	"context"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
)

// CategoryRepository define el puerto de lectura para las categorías de negocio.
type CategoryRepository interface {
	ListActiveBusinessCategories(ctx context.Context) ([]*entity.BusinessCategory, error)
}
