package dto

import (
	"io"

	"github.com/jhoicas/vitrina-api/internal/domain/entity"
)

// RegisterRequest campos del formulario multipart de registro.
// Los campos de negocio solo aplican cuando tipo_usuario es vendedor.
type RegisterRequest struct {
	Email            string `form:"email" json:"email" validate:"required,email"`
	Password         string `form:"password" json:"password" validate:"required,min=6"`
	TipoUsuario      string `form:"tipo_usuario" json:"tipo_usuario" validate:"required,oneof=cliente vendedor"`
	Nombre           string `form:"nombre" json:"nombre" validate:"required,max=100"`
	Apellido         string `form:"apellido" json:"apellido" validate:"required,max=100"`
	CiudadResidencia string `form:"ciudad_residencia" json:"ciudad_residencia"`
	Telefono         string `form:"telefono" json:"telefono" validate:"omitempty,max=20"`
	Genero           string `form:"genero" json:"genero"`
	FechaNacimiento  string `form:"fecha_nacimiento" json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`

	// Llegan como texto en multipart; el caso de uso los convierte.
	NombreNegocio      string `form:"nombre_negocio" json:"nombre_negocio"`
	IDCategoriaNegocio string `form:"id_categoria_negocio" json:"id_categoria_negocio"`
	RUC                string `form:"ruc" json:"ruc" validate:"omitempty,numeric,len=11"`
	Descripcion        string `form:"descripcion" json:"descripcion"`
	TelefonoNegocio    string `form:"telefono_negocio" json:"telefono_negocio"`
	Latitud            string `form:"latitud" json:"latitud"`
	Longitud           string `form:"longitud" json:"longitud"`
	Referencia         string `form:"referencia" json:"referencia"`

	DNIImage     *FileUpload `form:"-" json:"-"`
	ProfileImage *FileUpload `form:"-" json:"-"`
}

// FileUpload archivo recibido en memoria desde el formulario.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// RegisterResponse identidad creada y sesión (nil si falta confirmar el email).
type RegisterResponse struct {
	User    *entity.Identity `json:"user"`
	Session *entity.Session  `json:"session"`
}

// LoginRequest credenciales.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse sesión, identidad, perfil y, para vendedores, su negocio (puede ser null).
type LoginResponse struct {
	Session *entity.Session  `json:"session"`
	User    *entity.Identity `json:"user"`
	Perfil  *entity.Profile  `json:"perfil"`
	Negocio *entity.Business `json:"negocio"`
}
