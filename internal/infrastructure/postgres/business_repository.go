package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

const businessColumns = `n.id_negocio, n.id_usuario, n.id_categoria_negocio, n.nombre_negocio, n.ruc, n.descripcion,
	n.telefono_negocio, n.latitud, n.longitud, n.referencias, n.verificado, n.calificacion_promedio`

// BusinessRepo adaptador de la tabla NEGOCIO (usable con pool o tx).
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador de persistencia para negocios.
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

func scanBusiness(row pgx.Row, b *entity.Business, extra ...any) error {
	dest := []any{
		&b.IDNegocio, &b.IDUsuario, &b.IDCategoriaNegocio, &b.NombreNegocio, &b.RUC, &b.Descripcion,
		&b.TelefonoNegocio, &b.Latitud, &b.Longitud, &b.Referencias, &b.Verificado, &b.CalificacionPromedio,
	}
	return row.Scan(append(dest, extra...)...)
}

// Create inserta el negocio y completa IDNegocio y CalificacionPromedio (default del store).
func (r *BusinessRepo) Create(ctx context.Context, b *entity.Business) error {
	query := `
		INSERT INTO "NEGOCIO" (id_usuario, id_categoria_negocio, nombre_negocio, ruc, descripcion,
		                       telefono_negocio, latitud, longitud, referencias, verificado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id_negocio, calificacion_promedio`
	err := r.q.QueryRow(ctx, query,
		b.IDUsuario, b.IDCategoriaNegocio, b.NombreNegocio, b.RUC, b.Descripcion,
		b.TelefonoNegocio, b.Latitud, b.Longitud, b.Referencias, b.Verificado,
	).Scan(&b.IDNegocio, &b.CalificacionPromedio)
	if err != nil {
		return mapWriteError("insert negocio", err)
	}
	return nil
}

// GetByOwner negocio del vendedor. Devuelve (nil, nil) si no tiene.
func (r *BusinessRepo) GetByOwner(ctx context.Context, userID string) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM "NEGOCIO" n WHERE n.id_usuario = $1 LIMIT 1`
	var b entity.Business
	if err := scanBusiness(r.q.QueryRow(ctx, query, userID), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get negocio por dueño: %w", err)
	}
	return &b, nil
}

// GetInfo negocio con dueño (PERFILES) y nombre de categoría. Devuelve (nil, nil) si no existe.
func (r *BusinessRepo) GetInfo(ctx context.Context, id int64) (*entity.BusinessInfo, error) {
	query := `
		SELECT ` + businessColumns + `,
		       p.id_usuario, p.nombre, p.apellido, p.profile_url, p.email, c.nombre
		FROM "NEGOCIO" n
		LEFT JOIN "PERFILES" p ON p.id_usuario = n.id_usuario
		LEFT JOIN "CATEGORIA_NEGOCIO" c ON c.id_categoria_negocio = n.id_categoria_negocio
		WHERE n.id_negocio = $1`
	var (
		info                      entity.BusinessInfo
		ownerID, nombre, apellido *string
		profileURL, email         *string
	)
	err := scanBusiness(r.q.QueryRow(ctx, query, id), &info.Business,
		&ownerID, &nombre, &apellido, &profileURL, &email, &info.CategoriaName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get negocio: %w", err)
	}
	if ownerID != nil {
		info.Owner = &entity.BusinessOwner{
			IDUsuario:  *ownerID,
			Nombre:     deref(nombre),
			Apellido:   deref(apellido),
			ProfileURL: profileURL,
			Email:      email,
		}
	}
	return &info, nil
}

// GetOwnerID id_usuario del dueño. Devuelve "" si el negocio no existe.
func (r *BusinessRepo) GetOwnerID(ctx context.Context, id int64) (string, error) {
	var owner string
	err := r.q.QueryRow(ctx, `SELECT id_usuario FROM "NEGOCIO" WHERE id_negocio = $1`, id).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get dueño de negocio: %w", err)
	}
	return owner, nil
}

// SearchByName subcadena de nombre_negocio sin distinguir mayúsculas.
func (r *BusinessRepo) SearchByName(ctx context.Context, q string, limit, offset int) ([]*entity.BusinessSummary, error) {
	query := `
		SELECT id_negocio, nombre_negocio, descripcion, calificacion_promedio
		FROM "NEGOCIO"
		WHERE nombre_negocio ILIKE $1
		ORDER BY nombre_negocio, id_negocio
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, containsPattern(q), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search negocios: %w", err)
	}
	defer rows.Close()

	var list []*entity.BusinessSummary
	for rows.Next() {
		var b entity.BusinessSummary
		if err := rows.Scan(&b.IDNegocio, &b.NombreNegocio, &b.Descripcion, &b.CalificacionPromedio); err != nil {
			return nil, fmt.Errorf("scan negocio: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
