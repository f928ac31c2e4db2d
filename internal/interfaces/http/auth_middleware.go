package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// LocalCaller key de c.Locals donde queda el *entity.Caller autenticado.
const LocalCaller = "caller"

// callerResolver es el contrato mínimo del middleware; lo implementa *auth.Authenticator.
type callerResolver interface {
	Authenticate(ctx context.Context, token string) (*entity.Caller, error)
}

// AuthMiddleware exige "Authorization: Bearer <token>", resuelve el Caller y lo deja en c.Locals.
// Sin token válido en la cabecera responde 401 sin consultar el verificador ni el store.
func AuthMiddleware(resolver callerResolver, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return respondError(c, log, domain.Unauthorized("token Bearer requerido"))
		}
		caller, err := resolver.Authenticate(c.UserContext(), token)
		if err != nil {
			return respondError(c, log, err)
		}
		c.Locals(LocalCaller, caller)
		return c.Next()
	}
}

// RequireRole deja pasar solo a los roles indicados. Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(log *logger.Logger, allowed ...entity.Role) fiber.Handler {
	names := make([]string, len(allowed))
	for i, r := range allowed {
		names[i] = string(r)
	}
	msg := "rol requerido: " + strings.Join(names, " o ")

	return func(c *fiber.Ctx) error {
		caller := GetCaller(c)
		if caller == nil {
			return respondError(c, log, domain.Unauthorized("usuario no identificado"))
		}
		for _, r := range allowed {
			if caller.Role == r {
				return c.Next()
			}
		}
		return respondError(c, log, domain.Forbidden(msg))
	}
}

// GetCaller devuelve el Caller del contexto (nil si la ruta no pasó por AuthMiddleware).
func GetCaller(c *fiber.Ctx) *entity.Caller {
	caller, _ := c.Locals(LocalCaller).(*entity.Caller)
	return caller
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
