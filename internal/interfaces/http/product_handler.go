package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/usecase"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// ProductHandler alta de productos (vendedor autenticado).
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Publicar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Envelope{data=entity.Product}
// @Failure      400   {object}  dto.Envelope
// @Failure      401   {object}  dto.Envelope
// @Failure      403   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	caller := GetCaller(c)
	if caller == nil {
		return respondError(c, h.log, domain.Unauthorized("usuario no identificado"))
	}
	var in dto.CreateProductRequest
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
	return respondMessage(c, fiber.StatusCreated, "Producto publicado exitosamente.", out)
}
