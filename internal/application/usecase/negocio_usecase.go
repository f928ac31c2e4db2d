package usecase

import (
	"context"

	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

// NegocioUseCase lecturas públicas del perfil de un negocio.
type NegocioUseCase struct {
	businessRepo repository.BusinessRepository
	productRepo  repository.ProductRepository
	postRepo     repository.PostRepository
}

// NewNegocioUseCase construye el caso de uso.
func NewNegocioUseCase(
	businessRepo repository.BusinessRepository,
	productRepo repository.ProductRepository,
	postRepo repository.PostRepository,
) *NegocioUseCase {
	return &NegocioUseCase{businessRepo: businessRepo, productRepo: productRepo, postRepo: postRepo}
}

// GetInfo cabecera del negocio con dueño y categoría.
func (uc *NegocioUseCase) GetInfo(ctx context.Context, id int64) (*entity.BusinessInfo, error) {
	info, err := uc.businessRepo.GetInfo(ctx, id)
	if err != nil {
		return nil, domain.Upstream("error al buscar el negocio", err)
	}
	if info == nil {
		return nil, domain.NotFound("negocio no encontrado")
	}
	return info, nil
}

// ListProducts catálogo activo ordenado por nombre. Un negocio inexistente devuelve lista vacía.
func (uc *NegocioUseCase) ListProducts(ctx context.Context, id int64) ([]*entity.ProductWithCategory, error) {
	list, err := uc.productRepo.ListActiveByBusiness(ctx, id)
	if err != nil {
		return nil, domain.Upstream("error al obtener el catálogo de productos", err)
	}
	if list == nil {
		list = []*entity.ProductWithCategory{}
	}
	return list, nil
}

// ListPosts posts activos del dueño, más nuevos primero.
func (uc *NegocioUseCase) ListPosts(ctx context.Context, id int64) ([]*entity.Post, error) {
	owner, err := uc.businessRepo.GetOwnerID(ctx, id)
	if err != nil {
		return nil, domain.Upstream("error al buscar el negocio", err)
	}
	if owner == "" {
		return nil, domain.NotFound("negocio no encontrado")
	}
	posts, err := uc.postRepo.ListActiveByUser(ctx, owner)
	if err != nil {
		return nil, domain.Upstream("error al obtener los posts del negocio", err)
	}
	if posts == nil {
		posts = []*entity.Post{}
	}
	return posts, nil
}
