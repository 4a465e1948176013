package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Maxito7/hotel_core/internal/application"
	"github.com/Maxito7/hotel_core/internal/domain"
)

type ReservaHandler struct {
	service *application.ReservaService
}

// NewReservaHandler crea una nueva instancia del handler de reservas
func NewReservaHandler(service *application.ReservaService) *ReservaHandler {
	return &ReservaHandler{
		service: service,
	}
}

// CreateReservaRequest representa la petición para crear una reserva
type CreateReservaRequest struct {
	ClienteID         int                 `json:"clienteId,omitempty"`
	ClienteNombre     string              `json:"clienteNombre,omitempty"`
	ClienteEmail      string              `json:"clienteEmail,omitempty"`
	ClienteTelefono   string              `json:"clienteTelefono,omitempty"`
	HabitacionID      int                 `json:"habitacionId"`
	FechaEntrada      string              `json:"fechaEntrada"` // Formato: YYYY-MM-DD
	FechaSalida       string              `json:"fechaSalida"`  // Formato: YYYY-MM-DD
	CantidadHuespedes int                 `json:"cantidadHuespedes"`
	Servicios         []ServicioSeleccion `json:"servicios,omitempty"`
	Regla             string              `json:"regla,omitempty"`
	Nota              string              `json:"nota,omitempty"`
}

// ServicioSeleccion representa un servicio solicitado
type ServicioSeleccion struct {
	ServicioID int `json:"servicioId"`
	Cantidad   int `json:"cantidad"`
}

// CancelarRequest representa la petición de cancelación
type CancelarRequest struct {
	Motivo string `json:"motivo,omitempty"`
}

// VerificarDisponibilidadRequest representa la petición para verificar
// disponibilidad
type VerificarDisponibilidadRequest struct {
	HabitacionID int    `json:"habitacionId"`
	FechaEntrada string `json:"fechaEntrada"` // Formato: YYYY-MM-DD
	FechaSalida  string `json:"fechaSalida"`  // Formato: YYYY-MM-DD
}

// CreateReserva crea una nueva reserva
func (h *ReservaHandler) CreateReserva(c *fiber.Ctx) error {
	solicitud, err := h.parsearSolicitud(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	reserva, resultado, err := h.service.CreateReserva(solicitud)
	if err != nil {
		return responderError(c, err)
	}

	if !resultado.Valido {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":     "La solicitud no pasó la validación",
			"resultado": resultado,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"reserva":   reserva,
		"resultado": resultado,
	})
}

// ValidarSolicitud corre el pipeline de validación sin crear la reserva
func (h *ReservaHandler) ValidarSolicitud(c *fiber.Ctx) error {
	solicitud, err := h.parsearSolicitud(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(h.service.ValidarSolicitud(solicitud))
}

// GetReservaByID obtiene una reserva por su ID
func (h *ReservaHandler) GetReservaByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID de reserva inválido",
		})
	}

	reserva, err := h.service.GetReservaByID(id)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(reserva)
}

// GetReservasCliente obtiene todas las reservas de un cliente
func (h *ReservaHandler) GetReservasCliente(c *fiber.Ctx) error {
	clienteID, err := c.ParamsInt("clienteId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID de cliente inválido",
		})
	}

	reservas, err := h.service.GetReservasCliente(clienteID)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(reservas)
}

// ConfirmarReserva confirma una reserva pendiente
func (h *ReservaHandler) ConfirmarReserva(c *fiber.Ctx) error {
	return h.transicion(c, h.service.ConfirmarReserva)
}

// CancelarReserva cancela una reserva
func (h *ReservaHandler) CancelarReserva(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID de reserva inválido",
		})
	}

	var req CancelarRequest
	// El motivo es opcional; un cuerpo vacío es válido
	_ = c.BodyParser(&req)

	reserva, err := h.service.CancelarReserva(id, req.Motivo)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(reserva)
}

// CompletarReserva marca una reserva como completada
func (h *ReservaHandler) CompletarReserva(c *fiber.Ctx) error {
	return h.transicion(c, h.service.CompletarReserva)
}

// RegistrarCheckIn registra el check-in de una reserva confirmada
func (h *ReservaHandler) RegistrarCheckIn(c *fiber.Ctx) error {
	return h.transicion(c, h.service.RegistrarCheckIn)
}

// RegistrarCheckOut registra el check-out de una reserva
func (h *ReservaHandler) RegistrarCheckOut(c *fiber.Ctx) error {
	return h.transicion(c, h.service.RegistrarCheckOut)
}

// VerificarDisponibilidad verifica si una habitación está disponible
func (h *ReservaHandler) VerificarDisponibilidad(c *fiber.Ctx) error {
	var req VerificarDisponibilidadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	entrada, err := parseFecha(req.FechaEntrada)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de fechaEntrada inválido. Use YYYY-MM-DD",
		})
	}

	salida, err := parseFecha(req.FechaSalida)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de fechaSalida inválido. Use YYYY-MM-DD",
		})
	}

	disponible, err := h.service.VerificarDisponibilidad(req.HabitacionID, entrada, salida)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{
		"habitacionId": req.HabitacionID,
		"disponible":   disponible,
	})
}

func (h *ReservaHandler) parsearSolicitud(c *fiber.Ctx) (*application.SolicitudReserva, error) {
	var req CreateReservaRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Formato de solicitud inválido")
	}

	entrada, err := parseFecha(req.FechaEntrada)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Formato de fechaEntrada inválido. Use YYYY-MM-DD")
	}

	salida, err := parseFecha(req.FechaSalida)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Formato de fechaSalida inválido. Use YYYY-MM-DD")
	}

	servicios := make([]application.SeleccionServicio, 0, len(req.Servicios))
	for _, s := range req.Servicios {
		servicios = append(servicios, application.SeleccionServicio{
			ServicioID: s.ServicioID,
			Cantidad:   s.Cantidad,
		})
	}

	return &application.SolicitudReserva{
		ClienteID:         req.ClienteID,
		ClienteNombre:     req.ClienteNombre,
		ClienteEmail:      req.ClienteEmail,
		ClienteTelefono:   req.ClienteTelefono,
		HabitacionID:      req.HabitacionID,
		FechaEntrada:      entrada,
		FechaSalida:       salida,
		CantidadHuespedes: req.CantidadHuespedes,
		Servicios:         servicios,
		Regla:             application.ReglaPrecio(req.Regla),
		Nota:              req.Nota,
	}, nil
}

// transicion factoriza el patrón id-por-ruta → operación → reserva
func (h *ReservaHandler) transicion(c *fiber.Ctx, fn func(int) (*domain.Reserva, error)) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID de reserva inválido",
		})
	}

	reserva, err := fn(id)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(reserva)
}
