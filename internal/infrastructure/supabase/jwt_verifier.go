package supabase

import (
	"context"

	"github.com/jhoicas/vitrina-api/internal/application/ports"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/pkg/jwt"
)

var _ ports.TokenVerifier = (*JWTVerifier)(nil)

// JWTVerifier valida el access token localmente con el JWT secret del proyecto (HS256),
// sin ida y vuelta a GoTrue.
type JWTVerifier struct {
	secret string
}

// NewJWTVerifier construye el verificador local.
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: secret}
}

// VerifyToken firma, expiración, audiencia "authenticated" y sub obligatorios.
func (v *JWTVerifier) VerifyToken(_ context.Context, token string) (*entity.Identity, error) {
	claims, err := jwt.Parse(v.secret, token)
	if err != nil {
		return nil, domain.Wrap(domain.ErrUnauthorized, "token inválido o expirado", err)
	}
	return &entity.Identity{
		ID:           claims.Subject,
		Email:        claims.Email,
		Role:         claims.Role,
		UserMetadata: claims.UserMetadata,
	}, nil
}
