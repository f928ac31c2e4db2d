package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductState enum estado_producto_enum.
type ProductState string

const (
	ProductNuevo           ProductState = "nuevo"
	ProductUsado           ProductState = "usado"
	ProductReacondicionado ProductState = "reacondicionado"
)

// Valid indica si el estado pertenece al enum.
func (s ProductState) Valid() bool {
	switch s {
	case ProductNuevo, ProductUsado, ProductReacondicionado:
		return true
	}
	return false
}

// Product fila de PRODUCTO. Pertenece a un Business; se desactiva con Activo=false (no hay borrado físico).
type Product struct {
	IDProducto          int64            `json:"id_producto"`
	IDNegocio           int64            `json:"id_negocio"`
	IDCategoriaProducto *int64           `json:"id_categoria_producto"`
	Nombre              string           `json:"nombre"`
	Descripcion         *string          `json:"descripcion"`
	PrecioBase          decimal.Decimal  `json:"precio_base"`
	PrecioPromocional   *decimal.Decimal `json:"precio_promocional"`
	Stock               *int32           `json:"stock"`
	Estado              ProductState     `json:"estado"`
	Destacado           bool             `json:"destacado"`
	Activo              bool             `json:"activo"`
	ImageURL            *string          `json:"image_url"`
	FechaCreacion       time.Time        `json:"fecha_creacion"`
}

// ProductWithCategory producto del catálogo de un negocio con su categoría.
type ProductWithCategory struct {
	Product
	Categoria *ProductCategory `json:"categoria_producto"`
}

// ProductCategory proyección de CATEGORIA_PRODUCTO.
type ProductCategory struct {
	Nombre       string  `json:"nombre"`
	CategoriaURL *string `json:"categoria_url"`
}

// ProductListing fila de buscador/feed: producto unido al nombre del negocio y a su promoción vigente.
type ProductListing struct {
	IDProducto        int64
	Nombre            string
	PrecioBase        decimal.Decimal
	PrecioPromocional *decimal.Decimal
	ImageURL          *string
	NombreNegocio     *string
	Promocion         *Promotion
	FechaCreacion     time.Time
}
