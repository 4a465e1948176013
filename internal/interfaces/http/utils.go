package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Maxito7/hotel_core/internal/domain"
	"github.com/Maxito7/hotel_core/internal/metrics"
)

// parseFecha parsea una fecha en formato YYYY-MM-DD
func parseFecha(valor string) (time.Time, error) {
	return time.Parse("2006-01-02", valor)
}

// estadoHTTP mapea la taxonomía de errores de dominio a códigos HTTP
func estadoHTTP(err error) int {
	switch {
	case errors.Is(err, domain.ErrNoEncontrado):
		return fiber.StatusNotFound
	case domain.EsConflicto(err):
		metrics.ConflictosDisponibilidad.Inc()
		return fiber.StatusConflict
	case domain.EsTransicionInvalida(err):
		metrics.TransicionesRechazadas.Inc()
		return fiber.StatusUnprocessableEntity
	case domain.EsViolacionPolitica(err):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// responderError responde con el código y mensaje del error de dominio
func responderError(c *fiber.Ctx, err error) error {
	return c.Status(estadoHTTP(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
