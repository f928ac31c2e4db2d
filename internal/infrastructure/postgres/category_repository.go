package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo lectura de CATEGORIA_NEGOCIO.
type CategoryRepo struct {
	q Querier
}

func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) ListActiveBusinessCategories(ctx context.Context) ([]*entity.BusinessCategory, error) {
	query := `
		SELECT id_categoria_negocio, nombre, descripcion, icono_url, activo
		FROM "CATEGORIA_NEGOCIO"
		WHERE activo
		ORDER BY nombre ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categorías de negocio: %w", err)
	}
	defer rows.Close()

	var list []*entity.BusinessCategory
	for rows.Next() {
		var c entity.BusinessCategory
		if err := rows.Scan(&c.IDCategoriaNegocio, &c.Nombre, &c.Descripcion, &c.IconoURL, &c.Activo); err != nil {
			return nil, fmt.Errorf("scan categoría: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
