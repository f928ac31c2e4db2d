package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/vitrina-api/internal/domain"
)

// Códigos SQLSTATE que se traducen a errores de dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeInvalidText         = "22P02"
	codeInsufficientPriv    = "42501" // incluye el rechazo de una política RLS
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// mapWriteError traduce errores de INSERT a errores de dominio; el resto se envuelve con op.
func mapWriteError(op string, err error) error {
	switch pgCode(err) {
	case codeForeignKeyViolation:
		return domain.Wrap(domain.ErrNotFound, "id referenciado no encontrado", err)
	case codeCheckViolation, codeInvalidText:
		return domain.Wrap(domain.ErrInvalidArgument, "valor fuera del dominio permitido", err)
	case codeUniqueViolation:
		return domain.Wrap(domain.ErrInvalidArgument, "el registro ya existe", err)
	case codeInsufficientPriv:
		return domain.Wrap(domain.ErrForbidden, "operación no permitida para el usuario", err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern arma el patrón ILIKE de subcadena con los comodines del usuario escapados.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}
