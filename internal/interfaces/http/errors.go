package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/solar-marketplace-web/internal/application/auth"
	"github.com/jhoicas/solar-marketplace-web/internal/application/dto"
	"github.com/jhoicas/solar-marketplace-web/internal/domain"
	"github.com/jhoicas/solar-marketplace-web/internal/domain/routing"
	"github.com/jhoicas/solar-marketplace-web/pkg/logger"
)

// responder traduce errores de aplicación a respuestas HTTP y los registra.
type responder struct {
	sessions *auth.SessionUseCase
	cookies  CookieConfig
	log      *logger.Logger
}

// expire termina la sesión local: borra la cookie y la caché del usuario.
func (r *responder) expire(c *fiber.Ctx) {
	r.sessions.Forget(GetSession(c))
	c.Locals(LocalSession, nil)
	r.cookies.clear(c)
}

// fail responde el error como JSON. Nada se descarta sin registrar.
func (r *responder) fail(c *fiber.Ctx, err error) error {
	var invalid *domain.InvalidInputError
	var apiErr *domain.APIError
	message := ""
	if errors.As(err, &apiErr) {
		message = apiErr.Message
	}

	switch {
	case errors.As(err, &invalid):
		r.log.Debug().Err(err).Str("path", c.Path()).Msg("validación")
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: invalid.Error(), Field: invalid.Field})

	case errors.Is(err, domain.ErrUnauthorized):
		r.log.Info().Err(err).Str("path", c.Path()).Msg("sesión expirada")
		r.expire(c)
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code:     "SESSION_EXPIRED",
			Message:  nonEmpty(message, "la sesión expiró, inicie sesión de nuevo"),
			Redirect: routing.LandingPath,
		})

	case errors.Is(err, domain.ErrForbidden):
		r.log.Warn().Err(err).Str("path", c.Path()).Msg("acceso denegado")
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: nonEmpty(message, domain.ErrForbidden.Error())})

	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: nonEmpty(message, domain.ErrNotFound.Error())})

	case errors.Is(err, domain.ErrInvalidInput):
		r.log.Debug().Err(err).Str("path", c.Path()).Msg("entrada rechazada por el backend")
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: nonEmpty(message, domain.ErrInvalidInput.Error())})

	case errors.Is(err, domain.ErrConflict):
		r.log.Info().Err(err).Str("path", c.Path()).Msg("conflicto")
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: nonEmpty(message, domain.ErrConflict.Error())})

	case errors.Is(err, domain.ErrSuperseded), errors.Is(err, context.Canceled):
		r.log.Debug().Err(err).Str("path", c.Path()).Msg("petición reemplazada")
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUPERSEDED", Message: domain.ErrSuperseded.Error()})

	case errors.Is(err, domain.ErrTransient), errors.Is(err, context.DeadlineExceeded):
		r.log.Warn().Err(err).Str("path", c.Path()).Msg("error transitorio")
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code:        "TRANSIENT",
			Message:     nonEmpty(message, "no se pudo contactar al servidor, intente de nuevo"),
			Dismissible: true,
		})

	case errors.Is(err, domain.ErrUpstream):
		r.log.Error().Err(err).Str("path", c.Path()).Msg("respuesta inesperada del backend")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: domain.ErrUpstream.Error()})
	}

	r.log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
