package http

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/jhoicas/vitrina-api/internal/application/auth"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// Campos de archivo del registro; se aceptan también los nombres heredados del cliente móvil.
var (
	dniFields     = []string{"dni_image", "dni_url"}
	profileFields = []string{"profile_image", "profile_url"}
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc          *auth.AuthUseCase
	maxUploadMB int
	log         *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, maxUploadMB int, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, maxUploadMB: maxUploadMB, log: log}
}

// Register godoc
// @Summary      Registrar usuario (cliente o vendedor)
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        email             formData  string  true   "Email"
// @Param        password          formData  string  true   "Password (mínimo 6)"
// @Param        tipo_usuario      formData  string  true   "cliente | vendedor"
// @Param        dni_image         formData  file    false  "Foto del DNI"
// @Param        profile_image     formData  file    false  "Foto de perfil"
// @Success      201   {object}  dto.Envelope{data=dto.RegisterResponse}
// @Failure      400   {object}  dto.Envelope
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, h.log, domain.InvalidArgument("cuerpo inválido"))
	}
	if err := validateStruct(&in); err != nil {
		return respondError(c, h.log, err)
	}

	var opened []multipart.File
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()
	for _, slot := range []struct {
		fields []string
		dst    **dto.FileUpload
	}{
		{dniFields, &in.DNIImage},
		{profileFields, &in.ProfileImage},
	} {
		up, f, err := h.formFile(c, slot.fields...)
		if err != nil {
			return respondError(c, h.log, err)
		}
		if f != nil {
			opened = append(opened, f)
		}
		*slot.dst = up
	}

	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respond(c, fiber.StatusCreated, out)
}

// formFile abre el primer archivo presente entre los campos dados. (nil, nil, nil) si no hay ninguno.
func (h *AuthHandler) formFile(c *fiber.Ctx, fields ...string) (*dto.FileUpload, multipart.File, error) {
	for _, name := range fields {
		fh, err := c.FormFile(name)
		if err != nil {
			if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
				continue
			}
			return nil, nil, domain.InvalidArgument("formulario multipart inválido")
		}
		if max := int64(h.maxUploadMB) << 20; max > 0 && fh.Size > max {
			return nil, nil, domain.Validation("archivo demasiado grande", map[string]string{
				name: fmt.Sprintf("máximo %d MB", h.maxUploadMB),
			})
		}
		f, err := fh.Open()
		if err != nil {
			return nil, nil, domain.InvalidArgument("no se pudo leer el archivo " + name)
		}
		return &dto.FileUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(fiber.HeaderContentType),
			Size:        fh.Size,
			Content:     f,
		}, f, nil
	}
	return nil, nil, nil
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Envelope{data=dto.LoginResponse}
// @Failure      401   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, h.log, domain.InvalidArgument("cuerpo inválido"))
	}
	if in.Email == "" || in.Password == "" {
		return respondError(c, h.log, domain.InvalidArgument("Faltan credenciales (email, password)"))
	}
	if err := validateStruct(&in); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respond(c, fiber.StatusOK, out)
}
