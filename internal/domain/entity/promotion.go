package entity

import "time"

// Promotion fila de PROMOCIONES: superposición opcional sobre un producto.
type Promotion struct {
	IDPromocion int64
	IDProducto  int64
	FechaInicio time.Time
	FechaFin    time.Time
	Activa      bool
}

// Covers indica si la promoción está vigente en el instante dado.
func (p Promotion) Covers(t time.Time) bool {
	return p.Activa && !t.Before(p.FechaInicio) && !t.After(p.FechaFin)
}
