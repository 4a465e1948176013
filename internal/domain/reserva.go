package domain

import (
	"time"
)

type EstadoReserva string

const (
	ReservaPendiente  EstadoReserva = "Pendiente"
	ReservaConfirmada EstadoReserva = "Confirmada"
	ReservaCancelada  EstadoReserva = "Cancelada"
	ReservaCompletada EstadoReserva = "Completada"
)

// EsTerminal indica si el estado ya no admite transiciones
func (e EstadoReserva) EsTerminal() bool {
	return e == ReservaCancelada || e == ReservaCompletada
}

// LineaServicio representa un servicio contratado dentro de una reserva.
// PrecioUnitario es el precio del catálogo al momento de reservar y nunca
// se vuelve a leer del catálogo después.
type LineaServicio struct {
	ServicioID     int     `json:"servicioId"`
	Nombre         string  `json:"nombre"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precioUnitario"`
}

// Reserva representa una reserva principal
type Reserva struct {
	ID                int             `json:"id"`
	Codigo            string          `json:"codigo"`
	ClienteID         int             `json:"clienteId"`
	HabitacionID      int             `json:"habitacionId"`
	FechaEntrada      time.Time       `json:"fechaEntrada"`
	FechaSalida       time.Time       `json:"fechaSalida"`
	CantidadHuespedes int             `json:"cantidadHuespedes"`
	Estado            EstadoReserva   `json:"estado"`
	Servicios         []LineaServicio `json:"servicios,omitempty"`
	Subtotal          float64         `json:"subtotal"`
	Impuesto          float64         `json:"impuesto"`
	Total             float64         `json:"total"`
	Nota              string          `json:"nota,omitempty"`
	MotivoCancelacion string          `json:"motivoCancelacion,omitempty"`
	FechaCreacion     time.Time       `json:"fechaCreacion"`
}

// Noches calcula la cantidad de noches de la estadía (mínimo 1)
func (r *Reserva) Noches() int {
	noches := NochesEntre(r.FechaEntrada, r.FechaSalida)
	if noches < 1 {
		noches = 1
	}
	return noches
}

// NochesEntre calcula las noches entre dos fechas a granularidad de día
func NochesEntre(entrada, salida time.Time) int {
	e := time.Date(entrada.Year(), entrada.Month(), entrada.Day(), 0, 0, 0, 0, time.UTC)
	s := time.Date(salida.Year(), salida.Month(), salida.Day(), 0, 0, 0, 0, time.UTC)
	return int(s.Sub(e).Hours() / 24)
}

// ReservaRepository define las operaciones disponibles con las reservas
type ReservaRepository interface {
	// GetReservaByID obtiene una reserva por su ID
	GetReservaByID(id int) (*Reserva, error)
	// CreateReserva crea una nueva reserva en estado Pendiente. La
	// verificación de solapamiento y la escritura ocurren en una sola
	// transacción serializable; si otra reserva activa se solapa devuelve
	// un *ErrorConflicto.
	CreateReserva(reserva *Reserva) error
	// UpdateReservaEstado actualiza el estado de una reserva y, si aplica,
	// el motivo de cancelación
	UpdateReservaEstado(id int, estado EstadoReserva, motivo string) error
	// GetReservasActivas obtiene las reservas Pendientes o Confirmadas de
	// una habitación, excluyendo opcionalmente una reserva (excluirID > 0)
	GetReservasActivas(habitacionID int, excluirID int) ([]Reserva, error)
	// GetReservasCliente obtiene todas las reservas de un cliente
	GetReservasCliente(clienteID int) ([]Reserva, error)
	// UpdateExpiredReservations pasa a Completada las reservas confirmadas
	// cuya fecha de salida ya pasó
	UpdateExpiredReservations() error
}
