package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vitrina-api/internal/application/auth"
	"github.com/jhoicas/vitrina-api/internal/application/discover"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	Authenticator *auth.Authenticator
	ProductUC     *usecase.ProductUseCase
	PostUC        *usecase.PostUseCase
	NegocioUC     *usecase.NegocioUseCase
	DiscoverUC    *discover.UseCase
	MaxUploadMB   int
	Log           *logger.Logger
}

// Router registra las rutas de la API en la raíz y bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	h := handlers{
		auth:     NewAuthHandler(deps.AuthUC, deps.MaxUploadMB, log),
		product:  NewProductHandler(deps.ProductUC, log),
		post:     NewPostHandler(deps.PostUC, log),
		negocio:  NewNegocioHandler(deps.NegocioUC, log),
		discover: NewDiscoverHandler(deps.DiscoverUC, log),
		// RequireRole va siempre detrás de AuthMiddleware
		vendedor: []fiber.Handler{
			AuthMiddleware(deps.Authenticator, log),
			RequireRole(log, entity.RoleVendedor),
		},
	}

	h.mount(app.Group("/api/v1"))
	h.mount(app)
}

type handlers struct {
	auth     *AuthHandler
	product  *ProductHandler
	post     *PostHandler
	negocio  *NegocioHandler
	discover *DiscoverHandler
	vendedor []fiber.Handler
}

func (h handlers) mount(r fiber.Router) {
	// Auth (público)
	authGroup := r.Group("/auth")
	authGroup.Post("/register", h.auth.Register)
	authGroup.Post("/login", h.auth.Login)

	// Productos y posts (Bearer + vendedor)
	r.Post("/products", h.vendedorOnly(h.product.Create)...)
	r.Post("/posts", h.vendedorOnly(h.post.Create)...)

	// Negocio (público)
	negocio := r.Group("/negocio")
	negocio.Get("/:id/info", h.negocio.Info)
	negocio.Get("/:id/products", h.negocio.Products)
	negocio.Get("/:id/posts", h.negocio.Posts)

	// Discover y home (público)
	discoverGroup := r.Group("/discover")
	discoverGroup.Get("/categories/business", h.discover.BusinessCategories)
	discoverGroup.Get("/search", h.discover.Search)
	r.Get("/home/feed", h.discover.Feed)
}

func (h handlers) vendedorOnly(fn fiber.Handler) []fiber.Handler {
	chain := make([]fiber.Handler, 0, len(h.vendedor)+1)
	return append(append(chain, h.vendedor...), fn)
}
