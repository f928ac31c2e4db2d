package ports

import (
	"context"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
)

// IdentityProvider puerto de salida hacia el proveedor de identidad (Supabase Auth).
// El proveedor es dueño del hash de contraseñas; esta API nunca lo ve.
type IdentityProvider interface {
	// SignUp crea la identidad. La sesión puede ser nil si el proyecto exige confirmar el email.
	SignUp(ctx context.Context, email, password string, metadata map[string]any) (*entity.Identity, *entity.Session, error)
	// SignInWithPassword devuelve domain.ErrUnauthorized si las credenciales no son válidas.
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Identity, *entity.Session, error)
	// DeleteUser borra la identidad con la llave de servicio (rollback del registro).
	DeleteUser(ctx context.Context, userID string) error
}

// TokenVerifier valida un access token (firma y expiración) y resuelve la identidad.
// Devuelve domain.ErrUnauthorized si el token es inválido o expiró.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*entity.Identity, error)
}
