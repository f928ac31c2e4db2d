// Package discover contiene el buscador, el feed del home y el listado de categorías.
// Compone resultados heterogéneos (productos, negocios, posts) en una sola página
// con una señal has_more calculada pidiendo una fila extra por fuente.
package discover

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

const (
	SearchPageSize = 20 // ítems por tipo en el buscador
	FeedPageSize   = 30 // ítems totales en el feed
)

// feedHalf es ceil(FeedPageSize/2): filas por fuente en el feed.
const feedHalf = (FeedPageSize + 1) / 2

// MaxPage tope de ?page. Una página mayor se trata como MaxPage para que el OFFSET no desborde.
const MaxPage = 1 << 20

// UseCase buscador + feed + categorías. No guarda estado entre peticiones.
type UseCase struct {
	productRepo  repository.ProductRepository
	businessRepo repository.BusinessRepository
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	now          func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	productRepo repository.ProductRepository,
	businessRepo repository.BusinessRepository,
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
) *UseCase {
	return &UseCase{
		productRepo:  productRepo,
		businessRepo: businessRepo,
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		now:          time.Now,
	}
}

// Search busca por nombre (sin distinguir mayúsculas) en los tipos que indica filter.
//
// Cada tipo pide SearchPageSize+1 filas desde (page-1)*SearchPageSize; si llega la fila
// extra se descarta y esa fuente "tiene más". has_more es el OR de todas las fuentes.
// Orden fijo: productos, luego negocios.
func (uc *UseCase) Search(ctx context.Context, query string, filter dto.SearchFilter, page int) (*dto.FeedPage, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, domain.InvalidArgument(`el parámetro "q" es obligatorio para la búsqueda`)
	}
	filter, ok := dto.ParseSearchFilter(string(filter))
	if !ok {
		return nil, domain.InvalidArgument("filtro inválido. Use: all, business o product")
	}

	limit := SearchPageSize
	offset := (normalizePage(page) - 1) * limit

	var (
		products                     []*entity.ProductListing
		businesses                   []*entity.BusinessSummary
		productsMore, businessesMore bool
	)

	g, gctx := errgroup.WithContext(ctx)
	if filter == dto.FilterAll || filter == dto.FilterProduct {
		g.Go(func() error {
			rows, err := uc.productRepo.SearchByName(gctx, q, limit+1, offset)
			if err != nil {
				return domain.Upstream("error en búsqueda de productos", err)
			}
			products, productsMore = trimExtra(rows, limit)
			return nil
		})
	}
	if filter == dto.FilterAll || filter == dto.FilterBusiness {
		g.Go(func() error {
			rows, err := uc.businessRepo.SearchByName(gctx, q, limit+1, offset)
			if err != nil {
				return domain.Upstream("error en búsqueda de negocios", err)
			}
			businesses, businessesMore = trimExtra(rows, limit)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := uc.now()
	items := make([]dto.SearchResultItem, 0, len(products)+len(businesses))
	for _, p := range products {
		items = append(items, productItem(p, now))
	}
	for _, b := range businesses {
		items = append(items, businessItem(b))
	}

	return &dto.FeedPage{
		Data:       items,
		Pagination: dto.Pagination{HasMore: productsMore || businessesMore},
	}, nil
}

// Feed arma el home: productos destacados activos y posts activos, cada fuente
// paginada por separado con offset (page-1)*feedHalf y ordenada por fecha descendente.
//
// Las filas se concatenan (productos y luego posts) tal como llegan, incluida la fila
// extra de cada fuente, y recién después se corta a FeedPageSize. Si los productos
// ocupan la página, los posts del final se pierden aunque se hayan leído.
//
// Las páginas se solapan: la fila feedHalf+1 de cada fuente en la página N vuelve a
// aparecer como su primer ítem en la página N+1. Un cliente que acumula páginas debe
// deduplicar por id_producto / id_post.
func (uc *UseCase) Feed(ctx context.Context, page int) (*dto.FeedPage, error) {
	offset := (normalizePage(page) - 1) * feedHalf
	now := uc.now()

	var (
		products []*entity.ProductListing
		posts    []*entity.PostListing
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := uc.productRepo.ListFeatured(gctx, now, feedHalf+1, offset)
		if err != nil {
			return domain.Upstream("error al obtener productos del feed", err)
		}
		products = rows
		return nil
	})
	g.Go(func() error {
		rows, err := uc.postRepo.ListActive(gctx, feedHalf+1, offset)
		if err != nil {
			return domain.Upstream("error al obtener posts del feed", err)
		}
		posts = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	hasMore := len(products) > feedHalf || len(posts) > feedHalf

	items := make([]dto.SearchResultItem, 0, len(products)+len(posts))
	for _, p := range products {
		items = append(items, productItem(p, now))
	}
	for _, p := range posts {
		items = append(items, postItem(p))
	}
	if len(items) > FeedPageSize {
		items = items[:FeedPageSize]
	}

	return &dto.FeedPage{
		Data:       items,
		Pagination: dto.Pagination{HasMore: hasMore},
	}, nil
}

// ListCategories categorías de negocio activas ordenadas por nombre.
func (uc *UseCase) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.categoryRepo.ListActiveBusinessCategories(ctx)
	if err != nil {
		return nil, domain.Upstream("error al obtener las categorías de negocio", err)
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{
			IDCategoriaNegocio: c.IDCategoriaNegocio,
			Nombre:             c.Nombre,
			Descripcion:        c.Descripcion,
			IconoURL:           c.IconoURL,
		})
	}
	return out, nil
}

// normalizePage lleva page a [1, MaxPage].
func normalizePage(page int) int {
	switch {
	case page < 1:
		return 1
	case page > MaxPage:
		return MaxPage
	}
	return page
}

// trimExtra descarta la fila pedida de más y reporta si existía.
func trimExtra[T any](rows []T, limit int) ([]T, bool) {
	if len(rows) > limit {
		return rows[:limit], true
	}
	return rows, false
}
