package entity

import "github.com/shopspring/decimal"

// Business fila de NEGOCIO. Solo existe para perfiles vendedor (máximo uno por dueño, lo garantiza el store).
type Business struct {
	IDNegocio            int64            `json:"id_negocio"`
	IDUsuario            string           `json:"id_usuario"`
	IDCategoriaNegocio   int64            `json:"id_categoria_negocio"`
	NombreNegocio        string           `json:"nombre_negocio"`
	RUC                  *string          `json:"ruc"`
	Descripcion          *string          `json:"descripcion"`
	TelefonoNegocio      *string          `json:"telefono_negocio"`
	Latitud              decimal.Decimal  `json:"latitud"`
	Longitud             decimal.Decimal  `json:"longitud"`
	Referencias          *string          `json:"referencias"`
	Verificado           bool             `json:"verificado"` // true si tenía RUC al crearse
	CalificacionPromedio *decimal.Decimal `json:"calificacion_promedio"`
}

// BusinessOwner proyección del dueño para la cabecera del negocio.
type BusinessOwner struct {
	IDUsuario  string  `json:"id_usuario"`
	Nombre     string  `json:"nombre"`
	Apellido   string  `json:"apellido"`
	ProfileURL *string `json:"profile_url"`
	Email      *string `json:"email"`
}

// BusinessInfo negocio con su dueño y el nombre de su categoría.
type BusinessInfo struct {
	Business
	Owner         *BusinessOwner `json:"perfil"`
	CategoriaName *string        `json:"categoria_negocio"`
}

// BusinessSummary fila reducida usada por el buscador.
type BusinessSummary struct {
	IDNegocio            int64
	NombreNegocio        string
	Descripcion          *string
	CalificacionPromedio *decimal.Decimal
}
