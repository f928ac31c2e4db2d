package usecase

import (
	"context"

	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/application/ports"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
	"github.com/jhoicas/vitrina-api/internal/domain/repository"
)

// ProductUseCase alta de productos por el vendedor dueño del negocio.
type ProductUseCase struct {
	tx ports.CallerTxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(tx ports.CallerTxRunner) *ProductUseCase {
	return &ProductUseCase{tx: tx}
}

// Create valida, comprueba que el negocio sea del caller e inserta, todo en la transacción del caller.
// Defaults: estado nuevo, activo true, destacado false.
func (uc *ProductUseCase) Create(ctx context.Context, caller entity.Caller, in dto.CreateProductRequest) (*entity.Product, error) {
	product, err := newProduct(in)
	if err != nil {
		return nil, err
	}

	err = uc.tx.RunAsCaller(ctx, caller, func(
		businessRepo repository.BusinessRepository,
		productRepo repository.ProductRepository,
		_ repository.PostRepository,
	) error {
		owner, err := businessRepo.GetOwnerID(ctx, product.IDNegocio)
		if err != nil {
			return domain.Upstream("error al verificar el negocio", err)
		}
		if owner == "" {
			return domain.NotFound("id referenciado no encontrado")
		}
		if owner != caller.ID {
			return domain.Forbidden("el negocio no pertenece al usuario")
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return domain.FromStore("error al crear el producto", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func newProduct(in dto.CreateProductRequest) (*entity.Product, error) {
	fields := map[string]string{}
	if in.IDNegocio == nil {
		fields["id_negocio"] = "requerido"
	}
	if in.Nombre == "" {
		fields["nombre"] = "requerido"
	}
	if in.PrecioBase == nil {
		fields["precio_base"] = "requerido"
	} else if in.PrecioBase.IsNegative() {
		fields["precio_base"] = "no puede ser negativo"
	}
	if in.PrecioPromocional != nil && in.PrecioPromocional.IsNegative() {
		fields["precio_promocional"] = "no puede ser negativo"
	}
	if in.Stock != nil && *in.Stock < 0 {
		fields["stock"] = "no puede ser negativo"
	}
	estado := entity.ProductNuevo
	if in.Estado != "" {
		estado = entity.ProductState(in.Estado)
		if !estado.Valid() {
			fields["estado"] = "debe ser nuevo, usado o reacondicionado"
		}
	}
	if len(fields) > 0 {
		return nil, domain.Validation("faltan campos obligatorios o son inválidos", fields)
	}

	p := &entity.Product{
		IDNegocio:           *in.IDNegocio,
		IDCategoriaProducto: in.IDCategoriaProducto,
		Nombre:              in.Nombre,
		Descripcion:         in.Descripcion,
		PrecioBase:          *in.PrecioBase,
		PrecioPromocional:   in.PrecioPromocional,
		Stock:               in.Stock,
		Estado:              estado,
		Activo:              true,
		ImageURL:            in.ImageURL,
	}
	if in.Destacado != nil {
		p.Destacado = *in.Destacado
	}
	if in.Activo != nil {
		p.Activo = *in.Activo
	}
	return p, nil
}
