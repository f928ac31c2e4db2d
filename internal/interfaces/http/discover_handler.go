package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vitrina-api/internal/application/discover"
	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

// DiscoverHandler buscador, feed del home y categorías.
type DiscoverHandler struct {
	uc  *discover.UseCase
	log *logger.Logger
}

// NewDiscoverHandler construye el handler.
func NewDiscoverHandler(uc *discover.UseCase, log *logger.Logger) *DiscoverHandler {
	return &DiscoverHandler{uc: uc, log: log}
}

// pageParam ?page=N; ausente, no numérico o menor a 1 equivale a 1.
func pageParam(c *fiber.Ctx) int {
	n, err := strconv.Atoi(c.Query("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Search godoc
// @Summary      Buscador de productos y negocios
// @Tags         discover
// @Produce      json
// @Param        q       query  string  true   "Texto a buscar"
// @Param        filter  query  string  false  "all | business | product"  default(all)
// @Param        page    query  int     false  "Página (desde 1)"           default(1)
// @Success      200     {object}  dto.Envelope{data=[]dto.SearchResultItem}
// @Failure      400     {object}  dto.Envelope
// @Router       /discover/search [get]
func (h *DiscoverHandler) Search(c *fiber.Ctx) error {
	page, err := h.uc.Search(c.UserContext(), c.Query("q"), dto.SearchFilter(c.Query("filter")), pageParam(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondPage(c, page)
}

// Feed godoc
// @Summary      Feed del home (productos destacados y posts)
// @Tags         discover
// @Produce      json
// @Param        page  query  int  false  "Página (desde 1)"  default(1)
// @Success      200   {object}  dto.Envelope{data=[]dto.SearchResultItem}
// @Router       /home/feed [get]
func (h *DiscoverHandler) Feed(c *fiber.Ctx) error {
	page, err := h.uc.Feed(c.UserContext(), pageParam(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respondPage(c, page)
}

// BusinessCategories godoc
// @Summary      Categorías de negocio activas
// @Tags         discover
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.CategoryResponse}
// @Router       /discover/categories/business [get]
func (h *DiscoverHandler) BusinessCategories(c *fiber.Ctx) error {
	list, err := h.uc.ListCategories(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return respond(c, fiber.StatusOK, list)
}
