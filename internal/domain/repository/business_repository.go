package repository

import (
	"context"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
)

// BusinessRepository define el puerto de persistencia para Business (DIP).
// Las lecturas devuelven (nil, nil) o "" cuando el negocio no existe.
type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	GetByOwner(ctx context.Context, userID string) (*entity.Business, error)
	GetInfo(ctx context.Context, id int64) (*entity.BusinessInfo, error)
	GetOwnerID(ctx context.Context, id int64) (string, error)
	SearchByName(ctx context.Context, query string, limit, offset int) ([]*entity.BusinessSummary, error)
}
