package repository

import (
	"context"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
)

// ProfileRepository define el puerto de persistencia para Profile (DIP).
// GetByUserID devuelve (nil, nil) si no existe.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	// Upsert inserta o actualiza por id_usuario; es idempotente ante reintentos.
	Upsert(ctx context.Context, profile *entity.Profile) error
}
