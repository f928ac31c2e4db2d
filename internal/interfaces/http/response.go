package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vitrina-api/internal/application/dto"
	"github.com/jhoicas/vitrina-api/internal/domain"
	"github.com/jhoicas/vitrina-api/pkg/logger"
)

const msgInternal = "Error interno del servidor."

// respond escribe el sobre de éxito.
func respond(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(dto.Envelope{Status: dto.StatusSuccess, Data: data})
}

// respondMessage sobre de éxito con mensaje informativo.
func respondMessage(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.Envelope{Status: dto.StatusSuccess, Message: message, Data: data})
}

// respondPage sobre de éxito con paginación (buscador y feed).
func respondPage(c *fiber.Ctx, page *dto.FeedPage) error {
	p := page.Pagination
	return c.Status(fiber.StatusOK).JSON(dto.Envelope{
		Status:     dto.StatusSuccess,
		Data:       page.Data,
		Pagination: &p,
	})
}

// statusFor es el único lugar que traduce tipos de error de dominio a códigos HTTP.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError arma el sobre de error. Los 5xx se registran y no exponen la causa.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status := statusFor(err)
	body := dto.Envelope{Status: dto.StatusError, Message: msgInternal}

	var de *domain.Error
	if errors.As(err, &de) {
		body.Message = de.Message
		if len(de.Details) > 0 {
			body.Errors = de.Details
		}
	}
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", requestID(c)).
			Msg("error en la petición")
	}
	return c.Status(status).JSON(body)
}

// ErrorHandler handler de errores de fiber: errores de dominio devueltos por handlers,
// pánicos capturados por recover y errores del framework (404 de ruta, body demasiado grande).
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			if fe.Code >= fiber.StatusInternalServerError {
				log.Error().Err(err).Str("path", c.Path()).Str("request_id", requestID(c)).Msg("error del servidor")
				return c.Status(fe.Code).JSON(dto.Envelope{Status: dto.StatusError, Message: msgInternal})
			}
			return c.Status(fe.Code).JSON(dto.Envelope{Status: dto.StatusError, Message: fe.Message})
		}
		return respondError(c, log, err)
	}
}
