package auth

import (
	"context"

	"github.com/jhoicas/vitrina-api/internal/application/ports"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

// Authenticator resuelve el Caller de una petición: verifica el token y lee el perfil.
// Una sola llamada al verificador y una sola lectura de PERFILES, en ese orden.
type Authenticator struct {
	verifier    ports.TokenVerifier
	profileRepo repository.ProfileRepository
}

// NewAuthenticator construye el pipeline de autenticación.
func NewAuthenticator(verifier ports.TokenVerifier, profileRepo repository.ProfileRepository) *Authenticator {
	return &Authenticator{verifier: verifier, profileRepo: profileRepo}
}

// Authenticate devuelve ErrUnauthorized si el token no es válido y ErrNotFound si la identidad no tiene perfil.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*entity.Caller, error) {
	if token == "" {
		return nil, domain.Unauthorized("token Bearer requerido")
	}
	identity, err := a.verifier.VerifyToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if identity == nil || identity.ID == "" {
		return nil, domain.Unauthorized("token inválido o expirado")
	}

	profile, err := a.profileRepo.GetByUserID(ctx, identity.ID)
	if err != nil {
		return nil, domain.Upstream("error al obtener el perfil", err)
	}
	if profile == nil {
		return nil, domain.NotFound("perfil no encontrado")
	}

	role := profile.TipoUsuario
	if role == "" {
		role = entity.RoleCliente
	}
	return &entity.Caller{
		ID:          identity.ID,
		Email:       identity.Email,
		Role:        role,
		AccessToken: token,
	}, nil
}
