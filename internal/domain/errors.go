package domain

import (
	"errors"
	"fmt"
)

// Tipos de error de dominio (sin dependencias externas). La capa HTTP los traduce a códigos de estado.
var (
	ErrInvalidArgument = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUpstream        = errors.New("error del proveedor externo")
)

// Error es un error de dominio con mensaje para el cliente.
// errors.Is(err, domain.ErrNotFound) funciona a través de Kind.
type Error struct {
	Kind    error
	Message string
	Details map[string]string // errores por campo (validación)
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Is(target error) bool { return target == e.Kind }

func (e *Error) Unwrap() error { return e.Cause }

// InvalidArgument construye un error 400.
func InvalidArgument(msg string) *Error { return &Error{Kind: ErrInvalidArgument, Message: msg} }

// Validation construye un error 400 con detalle por campo.
func Validation(msg string, fields map[string]string) *Error {
	return &Error{Kind: ErrInvalidArgument, Message: msg, Details: fields}
}

// Unauthorized construye un error 401.
func Unauthorized(msg string) *Error { return &Error{Kind: ErrUnauthorized, Message: msg} }

// Forbidden construye un error 403.
func Forbidden(msg string) *Error { return &Error{Kind: ErrForbidden, Message: msg} }

// NotFound construye un error 404.
func NotFound(msg string) *Error { return &Error{Kind: ErrNotFound, Message: msg} }

// Upstream envuelve un fallo del store o del proveedor de identidad (500).
func Upstream(msg string, cause error) *Error {
	return &Error{Kind: ErrUpstream, Message: msg, Cause: cause}
}

// FromStore conserva un error de dominio que ya trae el repositorio (FK, check, RLS)
// y envuelve cualquier otro fallo como Upstream con msg.
func FromStore(msg string, err error) error {
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	return Upstream(msg, err)
}

// Wrap agrega la causa a un error de dominio sin cambiar su tipo.
func Wrap(kind error, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}
