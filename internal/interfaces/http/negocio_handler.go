package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vitrina-api/internal/application/usecase"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// NegocioHandler lecturas públicas del perfil de un negocio.
type NegocioHandler struct {
	uc  *usecase.NegocioUseCase
	log *logger.Logger
}

// NewNegocioHandler construye el handler.
func NewNegocioHandler(uc *usecase.NegocioUseCase, log *logger.Logger) *NegocioHandler {
	return &NegocioHandler{uc: uc, log: log}
}

func negocioID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, domain.InvalidArgument("ID de negocio inválido.")
	}
	return id, nil
}

// Info godoc
// @Summary      Cabecera del negocio
// @Tags         negocio
// @Produce      json
// @Param        id   path  int  true  "ID del negocio"
// @Success      200  {object}  dto.Envelope{data=entity.BusinessInfo}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /negocio/{id}/info [get]
func (h *NegocioHandler) Info(c *fiber.Ctx) error {
	id, err := negocioID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.GetInfo(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respond(c, fiber.StatusOK, out)
}

// Products godoc
// @Summary      Catálogo activo del negocio
// @Tags         negocio
// @Produce      json
// @Param        id   path  int  true  "ID del negocio"
// @Success      200  {object}  dto.Envelope{data=[]entity.ProductWithCategory}
// @Failure      400  {object}  dto.Envelope
// @Router       /negocio/{id}/products [get]
func (h *NegocioHandler) Products(c *fiber.Ctx) error {
	id, err := negocioID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	list, err := h.uc.ListProducts(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if len(list) == 0 {
		return respondMessage(c, fiber.StatusOK, "El negocio no tiene productos activos.", list)
	}
	return respond(c, fiber.StatusOK, list)
}

// Posts godoc
// @Summary      Novedades del negocio
// @Tags         negocio
// @Produce      json
// @Param        id   path  int  true  "ID del negocio"
// @Success      200  {object}  dto.Envelope{data=[]entity.Post}
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /negocio/{id}/posts [get]
func (h *NegocioHandler) Posts(c *fiber.Ctx) error {
	id, err := negocioID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	list, err := h.uc.ListPosts(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if len(list) == 0 {
		return respondMessage(c, fiber.StatusOK, "El negocio no tiene posts activos.", list)
	}
	return respond(c, fiber.StatusOK, list)
}
