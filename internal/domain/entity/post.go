package entity

import "time"

// Post publicación de un vendedor (POSTS).
type Post struct {
	IDPost        int64     `json:"id_post"`
	IDUsuario     string    `json:"id_usuario"`
	ImagenURL     string    `json:"imagen_url"`
	Descripcion   *string   `json:"descripcion"`
	Activo        bool      `json:"activo"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// PostListing post del feed unido al nombre del autor.
type PostListing struct {
	IDPost        int64
	Descripcion   *string
	ImagenURL     string
	FechaCreacion time.Time
	NombreUsuario *string
}
