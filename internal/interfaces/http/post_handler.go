package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// PostHandler publicación de posts (vendedor autenticado).
type PostHandler struct {
	uc  *usecase.PostUseCase
	log *logger.Logger
}

// NewPostHandler construye el handler.
func NewPostHandler(uc *usecase.PostUseCase, log *logger.Logger) *PostHandler {
	return &PostHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Publicar post
// @Tags         posts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePostRequest  true  "imagen_url, descripcion"
// @Success      201   {object}  dto.Envelope{data=entity.Post}
// @Failure      400   {object}  dto.Envelope
// @Failure      403   {object}  dto.Envelope
// @Router       /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	caller := GetCaller(c)
	if caller == nil {
		return respondError(c, h.log, domain.Unauthorized("usuario no identificado"))
	}
	var in dto.CreatePostRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, h.log, domain.InvalidArgument("cuerpo inválido"))
	}
	if err := validateStruct(&in); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Create(c.UserContext(), *caller, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondMessage(c, fiber.StatusCreated, "Post publicado exitosamente.", out)
}
