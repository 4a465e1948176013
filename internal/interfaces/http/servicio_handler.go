package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Maxito7/hotel_core/internal/domain"
)

type ServicioHandler struct {
	repo domain.ServicioRepository
}

func NewServicioHandler(repo domain.ServicioRepository) *ServicioHandler {
	return &ServicioHandler{
		repo: repo,
	}
}

// GetAllServices lista el catálogo de servicios
func (h *ServicioHandler) GetAllServices(c *fiber.Ctx) error {
	servicios, err := h.repo.GetAllServices()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "No se pudieron obtener los servicios",
		})
	}

	return c.JSON(servicios)
}
