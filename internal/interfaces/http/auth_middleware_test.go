package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vitrina-api/internal/application/auth"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	apphttp "github.com/jhoicas/vitrina-api/internal/interfaces/http"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	tokenVendedor  = "tok-vendedor"
	tokenCliente   = "tok-cliente"
	tokenSinPerfil = "tok-sin-perfil"
	tokenSinRol    = "tok-sin-rol"
)

type pipeline struct {
	verifier *fakeVerifier
	profiles *fakeProfiles
	authn    *auth.Authenticator
}

func newPipeline() *pipeline {
	v := &fakeVerifier{identities: map[string]*entity.Identity{
		tokenVendedor:  {ID: "u-vend", Email: "vend@test.pe"},
		tokenCliente:   {ID: "u-cli", Email: "cli@test.pe"},
		tokenSinPerfil: {ID: "u-ghost", Email: "ghost@test.pe"},
		tokenSinRol:    {ID: "u-legacy", Email: "legacy@test.pe"},
	}}
	p := &fakeProfiles{profiles: map[string]*entity.Profile{
		"u-vend":   {IDUsuario: "u-vend", Nombre: "Ana", TipoUsuario: entity.RoleVendedor},
		"u-cli":    {IDUsuario: "u-cli", Nombre: "Luis", TipoUsuario: entity.RoleCliente},
		"u-legacy": {IDUsuario: "u-legacy", Nombre: "Eva"},
	}}
	return &pipeline{verifier: v, profiles: p, authn: auth.NewAuthenticator(v, p)}
}

// buildTestApp aplicación mínima con AuthMiddleware + RequireRole y un handler
// que devuelve 200 con el caller si pasa los middlewares.
func buildTestApp(p *pipeline, allowed ...entity.Role) *fiber.App {
	log := logger.Nop()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})

	chain := []fiber.Handler{apphttp.AuthMiddleware(p.authn, log)}
	if len(allowed) > 0 {
		chain = append(chain, apphttp.RequireRole(log, allowed...))
	}
	chain = append(chain, func(c *fiber.Ctx) error {
		caller := apphttp.GetCaller(c)
		return c.JSON(fiber.Map{"id": caller.ID, "email": caller.Email, "role": caller.Role})
	})
	app.Get("/protected", chain...)
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

// ──────────────────────────────────────────────────────────────────────────────
// Extracción del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader_401SinConsultas(t *testing.T) {
	p := newPipeline()
	resp, body := doRequest(t, buildTestApp(p), "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "token Bearer requerido", body["message"])
	assert.Zero(t, p.verifier.calls, "no debe verificarse ningún token")
	assert.Zero(t, p.profiles.calls, "no debe leerse ningún perfil")
}

func TestAuthMiddleware_EsquemaNoBearer_401(t *testing.T) {
	for _, h := range []string{"Basic dXNlcjpwdw==", "Bearer", "Bearer    ", tokenVendedor} {
		p := newPipeline()
		resp, _ := doRequest(t, buildTestApp(p), h)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", h)
		assert.Zero(t, p.verifier.calls, "header %q", h)
	}
}

func TestAuthMiddleware_TokenInvalido_401(t *testing.T) {
	p := newPipeline()
	resp, _ := doRequest(t, buildTestApp(p), "Bearer token.invalido.aqui")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 1, p.verifier.calls)
	assert.Zero(t, p.profiles.calls)
}

func TestAuthMiddleware_SinPerfil_404(t *testing.T) {
	p := newPipeline()
	resp, body := doRequest(t, buildTestApp(p), "Bearer "+tokenSinPerfil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "perfil no encontrado", body["message"])
}

func TestAuthMiddleware_ExtraeCaller_UnaLlamadaPorPaso(t *testing.T) {
	p := newPipeline()
	resp, body := doRequest(t, buildTestApp(p), "bearer "+tokenCliente)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "u-cli", body["id"])
	assert.Equal(t, "cli@test.pe", body["email"])
	assert.Equal(t, "cliente", body["role"])
	assert.Equal(t, 1, p.verifier.calls)
	assert.Equal(t, 1, p.profiles.calls)
}

func TestAuthMiddleware_PerfilSinRolEsCliente(t *testing.T) {
	p := newPipeline()
	_, body := doRequest(t, buildTestApp(p), "Bearer "+tokenSinRol)
	assert.Equal(t, "cliente", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_VendedorAccede(t *testing.T) {
	resp, body := doRequest(t, buildTestApp(newPipeline(), entity.RoleVendedor), "Bearer "+tokenVendedor)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "vendedor", body["role"])
}

func TestRequireRole_ClienteBloqueado_403(t *testing.T) {
	resp, body := doRequest(t, buildTestApp(newPipeline(), entity.RoleVendedor), "Bearer "+tokenCliente)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "rol requerido: vendedor", body["message"])
}

func TestRequireRole_MultiRol(t *testing.T) {
	app := buildTestApp(newPipeline(), entity.RoleVendedor, entity.RoleCliente)
	resp, _ := doRequest(t, app, "Bearer "+tokenCliente)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_SinAuthMiddleware_401(t *testing.T) {
	log := logger.Nop()
	app := fiber.New()
	app.Get("/protected", apphttp.RequireRole(log, entity.RoleVendedor), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// El caller no se cachea: cada petición vuelve a verificar el token.
func TestAuthMiddleware_NoCacheaEntrePeticiones(t *testing.T) {
	p := newPipeline()
	app := buildTestApp(p)
	doRequest(t, app, "Bearer "+tokenVendedor)
	doRequest(t, app, "Bearer "+tokenVendedor)
	assert.Equal(t, 2, p.verifier.calls)
	assert.Equal(t, 2, p.profiles.calls)
}

func TestGetCaller_SinLocals(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Nil(t, apphttp.GetCaller(c))
		return nil
	})
	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
}
