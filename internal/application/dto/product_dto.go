package dto

import (
	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para publicar un producto.
// id_negocio, nombre y precio_base son obligatorios.
type CreateProductRequest struct {
	IDNegocio           *int64           `json:"id_negocio" validate:"required"`
	IDCategoriaProducto *int64           `json:"id_categoria_producto"`
	Nombre              string           `json:"nombre" validate:"required,max=200"`
	PrecioBase          *decimal.Decimal `json:"precio_base" validate:"required"`
	Descripcion         *string          `json:"descripcion"`
	PrecioPromocional   *decimal.Decimal `json:"precio_promocional"`
	Stock               *int32           `json:"stock" validate:"omitempty,min=0"`
	Estado              string           `json:"estado" validate:"omitempty,oneof=nuevo usado reacondicionado"`
	Destacado           *bool            `json:"destacado"`
	Activo              *bool            `json:"activo"`
	ImageURL            *string          `json:"image_url" validate:"omitempty,url"`
}

// CreatePostRequest entrada para publicar un post. id_usuario se toma del token, nunca del cuerpo.
type CreatePostRequest struct {
	ImagenURL   string  `json:"imagen_url" validate:"required"`
	Descripcion *string `json:"descripcion" validate:"omitempty,max=2000"`
	Activo      *bool   `json:"activo"`
}
