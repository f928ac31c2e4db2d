package dto

// Estados del sobre de respuesta.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope cuerpo uniforme de todas las respuestas HTTP.
type Envelope struct {
	Status     string      `json:"status"`
	Message    string      `json:"message,omitempty"`
	Data       any         `json:"data,omitempty"`
	Errors     any         `json:"errors,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination metadatos de página. HasMore es global: no indica qué fuente tiene más.
type Pagination struct {
	HasMore bool `json:"has_more"`
}
