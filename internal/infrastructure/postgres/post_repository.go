package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

var _ repository.PostRepository = (*PostRepo)(nil)

// PostRepo adaptador de la tabla POSTS.
type PostRepo struct {
	q Querier
}

// NewPostRepository construye el repo. Pasar pool o tx (Querier).
func NewPostRepository(q Querier) *PostRepo {
	return &PostRepo{q: q}
}

// Create inserta el post y completa IDPost y FechaCreacion.
func (r *PostRepo) Create(ctx context.Context, p *entity.Post) error {
	query := `
		INSERT INTO "POSTS" (id_usuario, imagen_url, descripcion, activo)
		VALUES ($1, $2, $3, $4)
		RETURNING id_post, fecha_creacion`
	err := r.q.QueryRow(ctx, query, p.IDUsuario, p.ImagenURL, p.Descripcion, p.Activo).
		Scan(&p.IDPost, &p.FechaCreacion)
	if err != nil {
		return mapWriteError("insert post", err)
	}
	return nil
}

// ListActiveByUser posts activos de un autor, más recientes primero.
func (r *PostRepo) ListActiveByUser(ctx context.Context, userID string) ([]*entity.Post, error) {
	query := `
		SELECT id_post, id_usuario, imagen_url, descripcion, activo, fecha_creacion
		FROM "POSTS"
		WHERE id_usuario = $1 AND activo
		ORDER BY fecha_creacion DESC, id_post DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list posts de usuario: %w", err)
	}
	defer rows.Close()

	var list []*entity.Post
	for rows.Next() {
		var p entity.Post
		if err := rows.Scan(&p.IDPost, &p.IDUsuario, &p.ImagenURL, &p.Descripcion, &p.Activo, &p.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListActive posts activos con el nombre del autor, más recientes primero.
func (r *PostRepo) ListActive(ctx context.Context, limit, offset int) ([]*entity.PostListing, error) {
	query := `
		SELECT po.id_post, po.descripcion, po.imagen_url, po.fecha_creacion, pe.nombre
		FROM "POSTS" po
		LEFT JOIN "PERFILES" pe ON pe.id_usuario = po.id_usuario
		WHERE po.activo
		ORDER BY po.fecha_creacion DESC, po.id_post DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var list []*entity.PostListing
	for rows.Next() {
		var p entity.PostListing
		if err := rows.Scan(&p.IDPost, &p.Descripcion, &p.ImagenURL, &p.FechaCreacion, &p.NombreUsuario); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
