package repository

import (
	"context"
	"time"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create inserta y completa IDProducto y FechaCreacion.
	Create(ctx context.Context, product *entity.Product) error
	ListActiveByBusiness(ctx context.Context, businessID int64) ([]*entity.ProductWithCategory, error)
	SearchByName(ctx context.Context, query string, limit, offset int) ([]*entity.ProductListing, error)
	// ListFeatured productos destacados y activos, más recientes primero, con la promoción vigente en now.
	ListFeatured(ctx context.Context, now time.Time, limit, offset int) ([]*entity.ProductListing, error)
}
