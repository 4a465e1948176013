package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Maxito7/hotel_core/internal/application"
)

type HabitacionHandler struct {
	service *application.HabitacionService
}

// NewHabitacionHandler crea una nueva instancia del handler de habitaciones
func NewHabitacionHandler(service *application.HabitacionService) *HabitacionHandler {
	return &HabitacionHandler{
		service: service,
	}
}

// GetAllHabitaciones retorna todas las habitaciones
func (h *HabitacionHandler) GetAllHabitaciones(c *fiber.Ctx) error {
	habitaciones, err := h.service.GetAllHabitaciones()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "No se pudieron obtener las habitaciones",
		})
	}

	return c.JSON(habitaciones)
}

// GetHabitacionByID obtiene una habitación por su ID
func (h *HabitacionHandler) GetHabitacionByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID de habitación inválido",
		})
	}

	habitacion, err := h.service.GetHabitacionByID(id)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(habitacion)
}

// IniciarMantenimiento saca una habitación del inventario
func (h *HabitacionHandler) IniciarMantenimiento(c *fiber.Ctx) error {
	return h.operacion(c, h.service.IniciarMantenimiento)
}

// FinalizarMantenimiento devuelve una habitación al inventario
func (h *HabitacionHandler) FinalizarMantenimiento(c *fiber.Ctx) error {
	return h.operacion(c, h.service.FinalizarMantenimiento)
}

func (h *HabitacionHandler) operacion(c *fiber.Ctx, fn func(int) error) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID de habitación inválido",
		})
	}

	if err := fn(id); err != nil {
		return responderError(c, err)
	}

	habitacion, err := h.service.GetHabitacionByID(id)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(habitacion)
}
