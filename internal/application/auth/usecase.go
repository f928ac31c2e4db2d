// Package auth registro, login y resolución del usuario que llama.
package auth

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/ports"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// Buckets nombres de los buckets de Storage.
type Buckets struct {
	Documents string // privado: se guarda el path
	Profiles  string // público: se guarda la URL
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	idp          ports.IdentityProvider
	profileRepo  repository.ProfileRepository
	businessRepo repository.BusinessRepository
	storage      ports.ObjectStorage
	buckets      Buckets
	log          *logger.Logger
	now          func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	idp ports.IdentityProvider,
	profileRepo repository.ProfileRepository,
	businessRepo repository.BusinessRepository,
	storage ports.ObjectStorage,
	buckets Buckets,
	log *logger.Logger,
) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		idp:          idp,
		profileRepo:  profileRepo,
		businessRepo: businessRepo,
		storage:      storage,
		buckets:      buckets,
		log:          log,
		now:          time.Now,
	}
}

type uploadedObject struct {
	bucket, path string
}

// Register crea la identidad, sube las imágenes, guarda el perfil y, para vendedores, el negocio.
// Si algo falla después de crear la identidad se borran los objetos subidos y la identidad,
// y se devuelve el error original.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	role, ok := entity.ParseRole(in.TipoUsuario)
	if !ok || in.TipoUsuario == "" {
		return nil, domain.Validation("datos de registro inválidos", map[string]string{
			"tipo_usuario": "debe ser cliente o vendedor",
		})
	}

	var business *entity.Business
	if role == entity.RoleVendedor {
		b, err := businessFromRequest(in)
		if err != nil {
			return nil, err
		}
		business = b
	}

	ciudad := in.CiudadResidencia
	if ciudad == "" {
		ciudad = "No especificada"
	}
	identity, session, err := uc.idp.SignUp(ctx, in.Email, in.Password, map[string]any{
		"nombre":       in.Nombre,
		"apellido":     in.Apellido,
		"tipo_usuario": string(role),
		"ciudad":       ciudad,
	})
	if err != nil {
		return nil, err
	}
	if identity == nil || identity.ID == "" {
		return nil, domain.Upstream("el proveedor de identidad no devolvió el usuario", nil)
	}

	var uploaded []uploadedObject
	fail := func(cause error) (*dto.RegisterResponse, error) {
		uc.compensate(ctx, identity.ID, uploaded)
		return nil, cause
	}

	var dniPath, profileURL *string
	if f := in.DNIImage; f != nil {
		p := objectName("dni", f.Filename, uc.now())
		if err := uc.storage.Upload(ctx, uc.buckets.Documents, p, f.Content, f.Size, f.ContentType); err != nil {
			return fail(domain.Upstream("no se pudo subir la imagen a "+uc.buckets.Documents, err))
		}
		uploaded = append(uploaded, uploadedObject{uc.buckets.Documents, p})
		dniPath = &p
	}
	if f := in.ProfileImage; f != nil {
		p := objectName("avatars", f.Filename, uc.now())
		if err := uc.storage.Upload(ctx, uc.buckets.Profiles, p, f.Content, f.Size, f.ContentType); err != nil {
			return fail(domain.Upstream("no se pudo subir la imagen a "+uc.buckets.Profiles, err))
		}
		uploaded = append(uploaded, uploadedObject{uc.buckets.Profiles, p})
		u := uc.storage.PublicURL(uc.buckets.Profiles, p)
		profileURL = &u
	}

	email := in.Email
	profile := &entity.Profile{
		IDUsuario:        identity.ID,
		Email:            &email,
		Nombre:           in.Nombre,
		Apellido:         in.Apellido,
		TipoUsuario:      role,
		Telefono:         optional(in.Telefono),
		Genero:           optional(in.Genero),
		FechaNacimiento:  optional(in.FechaNacimiento),
		DNIURL:           dniPath,
		ProfileURL:       profileURL,
		CiudadResidencia: optional(in.CiudadResidencia),
	}
	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		return fail(domain.FromStore("error al guardar el perfil", err))
	}

	if business != nil {
		business.IDUsuario = identity.ID
		if err := uc.businessRepo.Create(ctx, business); err != nil {
			return fail(domain.FromStore("error al crear el negocio", err))
		}
	}

	return &dto.RegisterResponse{User: identity, Session: session}, nil
}

// compensate best effort: los errores se registran pero no reemplazan al original.
func (uc *AuthUseCase) compensate(ctx context.Context, userID string, uploaded []uploadedObject) {
	ctx = context.WithoutCancel(ctx)
	for _, o := range uploaded {
		if err := uc.storage.Remove(ctx, o.bucket, o.path); err != nil {
			uc.log.Warn().Err(err).Str("bucket", o.bucket).Str("path", o.path).Msg("rollback registro: no se pudo borrar el objeto")
		}
	}
	if err := uc.idp.DeleteUser(ctx, userID); err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Msg("rollback registro: no se pudo borrar la identidad")
		return
	}
	uc.log.Info().Str("user_id", userID).Msg("rollback registro: identidad eliminada")
}

// Login valida credenciales contra el proveedor y arma sesión, perfil y negocio (solo vendedores, puede ser nil).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	identity, session, err := uc.idp.SignInWithPassword(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, identity.ID)
	if err != nil {
		return nil, domain.Upstream("error al obtener el perfil", err)
	}
	if profile == nil {
		return nil, domain.NotFound("perfil no encontrado")
	}

	var business *entity.Business
	if profile.TipoUsuario == entity.RoleVendedor {
		business, err = uc.businessRepo.GetByOwner(ctx, identity.ID)
		if err != nil {
			return nil, domain.Upstream("error al obtener el negocio", err)
		}
	}

	return &dto.LoginResponse{
		Session: session,
		User:    identity,
		Perfil:  profile,
		Negocio: business,
	}, nil
}

// businessFromRequest valida y convierte los campos de negocio que llegan como texto.
func businessFromRequest(in dto.RegisterRequest) (*entity.Business, error) {
	fields := map[string]string{}
	nombre := strings.TrimSpace(in.NombreNegocio)
	if nombre == "" {
		fields["nombre_negocio"] = "requerido para vendedores"
	}
	var categoria int64
	if strings.TrimSpace(in.IDCategoriaNegocio) == "" {
		fields["id_categoria_negocio"] = "requerido para vendedores"
	} else if n, err := strconv.ParseInt(strings.TrimSpace(in.IDCategoriaNegocio), 10, 64); err != nil || n <= 0 {
		fields["id_categoria_negocio"] = "debe ser un entero positivo"
	} else {
		categoria = n
	}
	lat, err := parseCoord(in.Latitud, 90)
	if err != nil {
		fields["latitud"] = err.Error()
	}
	lng, err := parseCoord(in.Longitud, 180)
	if err != nil {
		fields["longitud"] = err.Error()
	}
	if len(fields) > 0 {
		return nil, domain.Validation("faltan o son inválidos los datos del negocio", fields)
	}

	ruc := optional(in.RUC)
	return &entity.Business{
		IDCategoriaNegocio: categoria,
		NombreNegocio:      nombre,
		RUC:                ruc,
		Descripcion:        optional(in.Descripcion),
		TelefonoNegocio:    optional(in.TelefonoNegocio),
		Latitud:            lat,
		Longitud:           lng,
		Referencias:        optional(in.Referencia),
		Verificado:         ruc != nil,
	}, nil
}

// parseCoord vacío equivale a 0.
func parseCoord(s string, limit int64) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.New("debe ser numérico")
	}
	if d.Abs().GreaterThan(decimal.NewFromInt(limit)) {
		return decimal.Zero, errors.New("fuera de rango")
	}
	return d, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
