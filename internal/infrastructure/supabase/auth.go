package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/vitrina-api/internal/application/ports"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
)

var (
	_ ports.IdentityProvider = (*AuthClient)(nil)
	_ ports.TokenVerifier    = (*AuthClient)(nil)
)

// AuthClient adaptador de Supabase Auth (GoTrue).
type AuthClient struct {
	client *Client
}

// NewAuthClient construye el adaptador de identidad.
func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{client: c}
}

// SignUp crea la identidad. Si el proyecto exige confirmar el email GoTrue devuelve
// solo el usuario y la sesión queda en nil.
func (a *AuthClient) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*entity.Identity, *entity.Session, error) {
	payload := map[string]any{"email": email, "password": password}
	if len(metadata) > 0 {
		payload["data"] = metadata
	}
	body, status, err := a.client.requestJSON(ctx, http.MethodPost, a.client.authURL+"/signup", payload, a.client.anonKey, "")
	if err != nil {
		return nil, nil, domain.Upstream("error de red con el proveedor de identidad", err)
	}
	if status >= 400 {
		apiErr := parseError(body, status)
		if status < 500 {
			return nil, nil, domain.Wrap(domain.ErrInvalidArgument, apiErr.Message, apiErr)
		}
		return nil, nil, domain.Upstream("el proveedor de identidad rechazó el registro", apiErr)
	}

	var probe struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, nil, domain.Upstream("respuesta de registro inválida", err)
	}
	if probe.AccessToken != "" {
		var sess entity.Session
		if err := json.Unmarshal(body, &sess); err != nil {
			return nil, nil, domain.Upstream("respuesta de registro inválida", err)
		}
		return sess.User, &sess, nil
	}
	var user entity.Identity
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, nil, domain.Upstream("respuesta de registro inválida", err)
	}
	return &user, nil, nil
}

// SignInWithPassword grant_type=password. Credenciales inválidas o email sin confirmar: ErrUnauthorized.
func (a *AuthClient) SignInWithPassword(ctx context.Context, email, password string) (*entity.Identity, *entity.Session, error) {
	endpoint := a.client.authURL + "/token?grant_type=password"
	body, status, err := a.client.requestJSON(ctx, http.MethodPost, endpoint,
		map[string]string{"email": email, "password": password}, a.client.anonKey, "")
	if err != nil {
		return nil, nil, domain.Upstream("error de red con el proveedor de identidad", err)
	}
	if status >= 400 {
		apiErr := parseError(body, status)
		if status < 500 {
			return nil, nil, domain.Wrap(domain.ErrUnauthorized, "credenciales inválidas", apiErr)
		}
		return nil, nil, domain.Upstream("el proveedor de identidad no respondió", apiErr)
	}
	var sess entity.Session
	if err := json.Unmarshal(body, &sess); err != nil {
		return nil, nil, domain.Upstream("respuesta de login inválida", err)
	}
	if sess.User == nil {
		return nil, nil, domain.Upstream("respuesta de login sin usuario", nil)
	}
	return sess.User, &sess, nil
}

// VerifyToken pide /user con el token del cliente; GoTrue valida firma y expiración.
func (a *AuthClient) VerifyToken(ctx context.Context, token string) (*entity.Identity, error) {
	body, status, err := a.client.request(ctx, http.MethodGet, a.client.authURL+"/user", nil, a.client.anonKey, token, nil)
	if err != nil {
		return nil, domain.Upstream("error de red con el proveedor de identidad", err)
	}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return nil, domain.Wrap(domain.ErrUnauthorized, "token inválido o expirado", parseError(body, status))
	case status >= 400:
		return nil, domain.Upstream("el proveedor de identidad no respondió", parseError(body, status))
	}
	var user entity.Identity
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, domain.Upstream("respuesta de usuario inválida", err)
	}
	if user.ID == "" {
		return nil, domain.Unauthorized("token inválido o expirado")
	}
	return &user, nil
}

// DeleteUser API admin; requiere SUPABASE_SERVICE_KEY. Una identidad inexistente no es error.
func (a *AuthClient) DeleteUser(ctx context.Context, userID string) error {
	if a.client.serviceKey == "" {
		return fmt.Errorf("supabase: SUPABASE_SERVICE_KEY no configurada")
	}
	endpoint := a.client.authURL + "/admin/users/" + url.PathEscape(userID)
	body, status, err := a.client.request(ctx, http.MethodDelete, endpoint, nil, a.client.serviceKey, "", nil)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if status >= 400 && status != http.StatusNotFound {
		return fmt.Errorf("delete user: %w", parseError(body, status))
	}
	return nil
}
