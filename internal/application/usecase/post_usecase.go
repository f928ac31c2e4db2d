package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/ports"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

// PostUseCase publicaciones de vendedores.
type PostUseCase struct {
	tx ports.CallerTxRunner
}

func NewPostUseCase(tx ports.CallerTxRunner) *PostUseCase {
	return &PostUseCase{tx: tx}
}

// Create publica un post a nombre del caller; id_usuario nunca viene del cuerpo.
func (uc *PostUseCase) Create(ctx context.Context, caller entity.Caller, in dto.CreatePostRequest) (*entity.Post, error) {
	fields := map[string]string{}
	if caller.ID == "" {
		fields["id_usuario"] = "requerido"
	}
	if strings.TrimSpace(in.ImagenURL) == "" {
		fields["imagen_url"] = "requerido"
	}
	if len(fields) > 0 {
		return nil, domain.Validation("faltan campos obligatorios", fields)
	}

	post := &entity.Post{
		IDUsuario:   caller.ID,
		ImagenURL:   strings.TrimSpace(in.ImagenURL),
		Descripcion: in.Descripcion,
		Activo:      true,
	}
	if in.Activo != nil {
		post.Activo = *in.Activo
	}

	err := uc.tx.RunAsCaller(ctx, caller, func(_ repository.BusinessRepository, _ repository.ProductRepository, postRepo repository.PostRepository) error {
		if err := postRepo.Create(ctx, post); err != nil {
			return domain.FromStore("error al crear el post", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}
