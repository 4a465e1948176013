package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Maxito7/hotel_core/internal/domain"
)

type ConfigHandler struct {
	politica domain.ConfiguracionHotel
}

func NewConfigHandler(politica domain.ConfiguracionHotel) *ConfigHandler {
	return &ConfigHandler{politica: politica}
}

// GetPolitica expone la política vigente del hotel (solo lectura)
func (h *ConfigHandler) GetPolitica(c *fiber.Ctx) error {
	return c.JSON(h.politica)
}
