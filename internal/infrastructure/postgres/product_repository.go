package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// listingSelect producto + nombre del negocio + promoción vigente en $1 (la de fecha_fin más lejana).
const listingSelect = `
	SELECT p.id_producto, p.nombre, p.precio_base, p.precio_promocional, p.image_url, p.fecha_creacion,
	       n.nombre_negocio, pr.id_promocion, pr.fecha_inicio, pr.fecha_fin, pr.activa
	FROM "PRODUCTO" p
	LEFT JOIN "NEGOCIO" n ON n.id_negocio = p.id_negocio
	LEFT JOIN LATERAL (
		SELECT id_promocion, fecha_inicio, fecha_fin, activa
		FROM "PROMOCIONES"
		WHERE id_producto = p.id_producto AND activa AND $1 BETWEEN fecha_inicio AND fecha_fin
		ORDER BY fecha_fin DESC
		LIMIT 1
	) pr ON true`

// ProductRepo implementación del puerto ProductRepository sobre PRODUCTO (usable con pool o tx).
type ProductRepo struct {
	q   Querier
	now func() time.Time
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q, now: time.Now}
}

// Create persiste un nuevo producto y completa IDProducto y FechaCreacion.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO "PRODUCTO" (id_negocio, id_categoria_producto, nombre, descripcion, precio_base,
		                        precio_promocional, stock, estado, destacado, activo, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id_producto, fecha_creacion`
	err := r.q.QueryRow(ctx, query,
		p.IDNegocio, p.IDCategoriaProducto, p.Nombre, p.Descripcion, p.PrecioBase,
		p.PrecioPromocional, p.Stock, string(p.Estado), p.Destacado, p.Activo, p.ImageURL,
	).Scan(&p.IDProducto, &p.FechaCreacion)
	if err != nil {
		return mapWriteError("insert producto", err)
	}
	return nil
}

// ListActiveByBusiness productos activos de un negocio ordenados por nombre, con su categoría.
func (r *ProductRepo) ListActiveByBusiness(ctx context.Context, businessID int64) ([]*entity.ProductWithCategory, error) {
	query := `
		SELECT p.id_producto, p.id_negocio, p.id_categoria_producto, p.nombre, p.descripcion, p.precio_base,
		       p.precio_promocional, p.stock, p.estado::text, p.destacado, p.activo, p.image_url, p.fecha_creacion,
		       c.nombre, c.categoria_url
		FROM "PRODUCTO" p
		LEFT JOIN "CATEGORIA_PRODUCTO" c ON c.id_categoria_producto = p.id_categoria_producto
		WHERE p.id_negocio = $1 AND p.activo
		ORDER BY p.nombre, p.id_producto`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list productos de negocio: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductWithCategory
	for rows.Next() {
		var (
			p            entity.ProductWithCategory
			estado       string
			catNombre    *string
			categoriaURL *string
		)
		if err := rows.Scan(
			&p.IDProducto, &p.IDNegocio, &p.IDCategoriaProducto, &p.Nombre, &p.Descripcion, &p.PrecioBase,
			&p.PrecioPromocional, &p.Stock, &estado, &p.Destacado, &p.Activo, &p.ImageURL, &p.FechaCreacion,
			&catNombre, &categoriaURL,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		p.Estado = entity.ProductState(estado)
		if catNombre != nil {
			p.Categoria = &entity.ProductCategory{Nombre: *catNombre, CategoriaURL: categoriaURL}
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SearchByName productos activos cuyo nombre contiene q, sin distinguir mayúsculas.
func (r *ProductRepo) SearchByName(ctx context.Context, q string, limit, offset int) ([]*entity.ProductListing, error) {
	query := listingSelect + `
		WHERE p.activo AND p.nombre ILIKE $2
		ORDER BY p.nombre, p.id_producto
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, r.now(), containsPattern(q), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search productos: %w", err)
	}
	return collectListings(rows)
}

// ListFeatured productos destacados y activos, más recientes primero.
func (r *ProductRepo) ListFeatured(ctx context.Context, now time.Time, limit, offset int) ([]*entity.ProductListing, error) {
	query := listingSelect + `
		WHERE p.destacado AND p.activo
		ORDER BY p.fecha_creacion DESC, p.id_producto DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, now, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos destacados: %w", err)
	}
	return collectListings(rows)
}

func collectListings(rows pgx.Rows) ([]*entity.ProductListing, error) {
	defer rows.Close()
	var list []*entity.ProductListing
	for rows.Next() {
		var (
			p           entity.ProductListing
			promoID     *int64
			inicio, fin *time.Time
			activa      *bool
		)
		if err := rows.Scan(
			&p.IDProducto, &p.Nombre, &p.PrecioBase, &p.PrecioPromocional, &p.ImageURL, &p.FechaCreacion,
			&p.NombreNegocio, &promoID, &inicio, &fin, &activa,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		if promoID != nil && inicio != nil && fin != nil {
			p.Promocion = &entity.Promotion{
				IDPromocion: *promoID,
				IDProducto:  p.IDProducto,
				FechaInicio: *inicio,
				FechaFin:    *fin,
				Activa:      activa != nil && *activa,
			}
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
