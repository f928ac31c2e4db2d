package entity

import "time"

// Role es el tipo_usuario de un perfil (enum tipo_usuario_enum en la base).
type Role string

// Roles válidos para Profile.
const (
	RoleCliente  Role = "cliente"
	RoleVendedor Role = "vendedor"
)

// ParseRole normaliza el valor almacenado; vacío o nulo equivale a cliente.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case "":
		return RoleCliente, true
	case RoleCliente, RoleVendedor:
		return Role(s), true
	default:
		return RoleCliente, false
	}
}

// Identity usuario del proveedor de identidad (Supabase Auth). El hash del password nunca sale del proveedor.
type Identity struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	Role         string         `json:"role,omitempty"` // rol de Postgres, ej. "authenticated"
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
	CreatedAt    *time.Time     `json:"created_at,omitempty"`
}

// Session tokens emitidos por el proveedor de identidad.
type Session struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
	ExpiresAt    int64     `json:"expires_at,omitempty"`
	RefreshToken string    `json:"refresh_token"`
	User         *Identity `json:"user,omitempty"`
}

// Caller identidad resuelta para la petición en curso (no se persiste ni se cachea).
type Caller struct {
	ID          string
	Email       string
	Role        Role
	AccessToken string // se reenvía al store para que apliquen las políticas RLS
}

// Profile fila de PERFILES; uno a uno con Identity.
type Profile struct {
	IDUsuario        string  `json:"id_usuario"`
	Email            *string `json:"email"`
	Nombre           string  `json:"nombre"`
	Apellido         string  `json:"apellido"`
	TipoUsuario      Role    `json:"tipo_usuario"`
	Telefono         *string `json:"telefono"`
	Genero           *string `json:"genero"`
	FechaNacimiento  *string `json:"fecha_nacimiento"` // YYYY-MM-DD
	DNIURL           *string `json:"dni_url"`          // path privado en el bucket de documentos
	ProfileURL       *string `json:"profile_url"`      // URL pública
	CiudadResidencia *string `json:"ciudad_residencia"`
}
