package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/vitrina-api/internal/application/auth"
	"github.com/jhoicas/vitrina-api/internal/application/discover"
	"github.com/jhoicas/vitrina-api/internal/application/ports"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
	"github.com/jhoicas/vitrina-api/internal/infrastructure/postgres"
	"github.com/jhoicas/vitrina-api/internal/infrastructure/storage"
	"github.com/jhoicas/vitrina-api/internal/infrastructure/supabase"
	httpRouter "github.com/jhoicas/vitrina-api/internal/interfaces/http"
	"github.com/jhoicas/vitrina-api/pkg/config"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	sb, err := supabase.NewClient(cfg.Supabase, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("cliente Supabase")
	}
	authClient := supabase.NewAuthClient(sb)

	// Con el secreto JWT del proyecto los tokens se validan localmente; sin él, contra /auth/v1/user.
	var verifier ports.TokenVerifier = authClient
	if cfg.Supabase.JWTSecret != "" {
		verifier = supabase.NewJWTVerifier(cfg.Supabase.JWTSecret)
	}
	if cfg.Supabase.ServiceKey == "" {
		log.Warn().Msg("SUPABASE_SERVICE_KEY vacío: el rollback de registro no podrá borrar identidades")
	}

	objects, err := newObjectStorage(cfg, sb)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de objetos")
	}

	profileRepo := postgres.NewProfileRepository(pool)
	businessRepo := postgres.NewBusinessRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	postRepo := postgres.NewPostRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(authClient, profileRepo, businessRepo, objects, auth.Buckets{
		Documents: cfg.Storage.BucketDocuments,
		Profiles:  cfg.Storage.BucketProfiles,
	}, log)
	authenticator := auth.NewAuthenticator(verifier, profileRepo)
	productUC := usecase.NewProductUseCase(txRunner)
	postUC := usecase.NewPostUseCase(txRunner)
	negocioUC := usecase.NewNegocioUseCase(businessRepo, productRepo, postRepo)
	discoverUC := discover.NewUseCase(productRepo, businessRepo, postRepo, categoryRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		// dos imágenes más los campos del formulario
		BodyLimit:    (2*cfg.Storage.MaxUploadMB + 1) << 20,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Vitrina API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		Authenticator: authenticator,
		ProductUC:     productUC,
		PostUC:        postUC,
		NegocioUC:     negocioUC,
		DiscoverUC:    discoverUC,
		MaxUploadMB:   cfg.Storage.MaxUploadMB,
		Log:           log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// newObjectStorage elige el adaptador según STORAGE_DRIVER.
func newObjectStorage(cfg *config.Config, sb *supabase.Client) (ports.ObjectStorage, error) {
	if cfg.Storage.Driver != "s3" {
		return supabase.NewStorageClient(sb), nil
	}
	s3, err := storage.NewS3(storage.Config{
		Endpoint:      cfg.Storage.Endpoint,
		Region:        cfg.Storage.Region,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		UseSSL:        cfg.Storage.UseSSL,
		PublicBaseURL: cfg.Supabase.URL + "/storage/v1/object/public",
	})
	if err != nil {
		return nil, err
	}
	return s3, nil
}
