package discover

import (
	"time"

	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/domain/entity"
)

// Una función por tipo de fuente: cada una aplana la relación unida (negocio, autor,
// promoción) en un esquema fijo y produce su variante de SearchResultItem.

func productItem(p *entity.ProductListing, now time.Time) dto.SearchResultItem {
	card := &dto.ProductCard{
		IDProducto:        p.IDProducto,
		Nombre:            p.Nombre,
		PrecioBase:        p.PrecioBase,
		PrecioPromocional: p.PrecioPromocional,
		ImageURL:          p.ImageURL,
		NombreNegocio:     p.NombreNegocio,
	}
	if p.Promocion != nil && p.Promocion.Covers(now) {
		fin := p.Promocion.FechaFin
		card.EnPromocion = true
		card.FechaFinPromocion = &fin
	}
	return dto.SearchResultItem{Type: dto.ItemProduct, Data: card}
}

func businessItem(b *entity.BusinessSummary) dto.SearchResultItem {
	return dto.SearchResultItem{
		Type: dto.ItemBusiness,
		Data: &dto.BusinessCard{
			IDNegocio:            b.IDNegocio,
			NombreNegocio:        b.NombreNegocio,
			Descripcion:          b.Descripcion,
			CalificacionPromedio: b.CalificacionPromedio,
		},
	}
}

func postItem(p *entity.PostListing) dto.SearchResultItem {
	return dto.SearchResultItem{
		Type: dto.ItemPost,
		Data: &dto.PostCard{
			IDPost:        p.IDPost,
			Descripcion:   p.Descripcion,
			ImagenURL:     p.ImagenURL,
			FechaCreacion: p.FechaCreacion,
			NombreUsuario: p.NombreUsuario,
		},
	}
}
