package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre la tabla PERFILES.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador de persistencia para perfiles. Pasar pool o tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// GetByUserID obtiene el perfil de una identidad. Devuelve (nil, nil) si no existe.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	query := `
		SELECT id_usuario, email, nombre, apellido, COALESCE(tipo_usuario::text, ''), telefono, genero,
		       fecha_nacimiento::text, dni_url, profile_url, ciudad_residencia
		FROM "PERFILES" WHERE id_usuario = $1`
	var (
		p    entity.Profile
		role string
	)
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&p.IDUsuario, &p.Email, &p.Nombre, &p.Apellido, &role, &p.Telefono, &p.Genero,
		&p.FechaNacimiento, &p.DNIURL, &p.ProfileURL, &p.CiudadResidencia,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get perfil: %w", err)
	}
	// Un valor fuera del enum se trata como cliente (el menor privilegio).
	p.TipoUsuario, _ = entity.ParseRole(role)
	return &p, nil
}

// Upsert inserta el perfil o lo actualiza si ya existe la fila de id_usuario.
func (r *ProfileRepo) Upsert(ctx context.Context, p *entity.Profile) error {
	query := `
		INSERT INTO "PERFILES" (id_usuario, email, nombre, apellido, tipo_usuario, telefono, genero,
		                        fecha_nacimiento, dni_url, profile_url, ciudad_residencia)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::date, $9, $10, $11)
		ON CONFLICT (id_usuario) DO UPDATE SET
			email = EXCLUDED.email,
			nombre = EXCLUDED.nombre,
			apellido = EXCLUDED.apellido,
			tipo_usuario = EXCLUDED.tipo_usuario,
			telefono = EXCLUDED.telefono,
			genero = EXCLUDED.genero,
			fecha_nacimiento = EXCLUDED.fecha_nacimiento,
			dni_url = EXCLUDED.dni_url,
			profile_url = EXCLUDED.profile_url,
			ciudad_residencia = EXCLUDED.ciudad_residencia`
	_, err := r.q.Exec(ctx, query,
		p.IDUsuario, p.Email, p.Nombre, p.Apellido, string(p.TipoUsuario), p.Telefono, p.Genero,
		p.FechaNacimiento, p.DNIURL, p.ProfileURL, p.CiudadResidencia,
	)
	if err != nil {
		return mapWriteError("upsert perfil", err)
	}
	return nil
}
