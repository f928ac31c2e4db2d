package entity

// BusinessCategory fila de CATEGORIA_NEGOCIO (rubro del negocio).
type BusinessCategory struct {
	IDCategoriaNegocio int64
	Nombre             string
	Descripcion        *string
	IconoURL           *string
	Activo             bool
}
