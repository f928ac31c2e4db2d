package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemType discriminador de SearchResultItem.
type ItemType string

const (
	ItemProduct  ItemType = "product"
	ItemBusiness ItemType = "business"
	ItemPost     ItemType = "post"
)

// SearchFilter tipos seleccionables en el buscador.
type SearchFilter string

const (
	FilterAll      SearchFilter = "all"
	FilterBusiness SearchFilter = "business"
	FilterProduct  SearchFilter = "product"
)

// ParseSearchFilter vacío equivale a all.
func ParseSearchFilter(s string) (SearchFilter, bool) {
	switch SearchFilter(s) {
	case "", FilterAll:
		return FilterAll, true
	case FilterBusiness, FilterProduct:
		return SearchFilter(s), true
	}
	return "", false
}

// SearchResultItem unión etiquetada: la forma de Data depende de Type
// (*ProductCard, *BusinessCard o *PostCard).
type SearchResultItem struct {
	Type ItemType `json:"type"`
	Data any      `json:"data"`
}

// FeedPage página del buscador o del feed.
type FeedPage struct {
	Data       []SearchResultItem `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

// ProductCard producto aplanado con el nombre de su negocio.
type ProductCard struct {
	IDProducto        int64            `json:"id_producto"`
	Nombre            string           `json:"nombre"`
	PrecioBase        decimal.Decimal  `json:"precio_base"`
	PrecioPromocional *decimal.Decimal `json:"precio_promocional,omitempty"`
	ImageURL          *string          `json:"image_url"`
	NombreNegocio     *string          `json:"nombre_negocio"`
	EnPromocion       bool             `json:"en_promocion"`
	FechaFinPromocion *time.Time       `json:"fecha_fin_promocion,omitempty"`
}

// BusinessCard negocio en resultados de búsqueda.
type BusinessCard struct {
	IDNegocio            int64            `json:"id_negocio"`
	NombreNegocio        string           `json:"nombre_negocio"`
	Descripcion          *string          `json:"descripcion"`
	CalificacionPromedio *decimal.Decimal `json:"calificacion_promedio"`
}

// PostCard post aplanado con el nombre del autor.
type PostCard struct {
	IDPost        int64     `json:"id_post"`
	Descripcion   *string   `json:"descripcion"`
	ImagenURL     string    `json:"imagen_url"`
	FechaCreacion time.Time `json:"fecha_creacion"`
	NombreUsuario *string   `json:"nombre_usuario"`
}

// CategoryResponse categoría de negocio para Discover.
type CategoryResponse struct {
	IDCategoriaNegocio int64   `json:"id_categoria_negocio"`
	Nombre             string  `json:"nombre"`
	Descripcion        *string `json:"descripcion"`
	IconoURL           *string `json:"icono_url"`
}
