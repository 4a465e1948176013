package application

import (
	"log"

	"github.com/Maxito7/hotel_core/internal/domain"
	"github.com/Maxito7/hotel_core/internal/email"
)

// NotificadorEmail traduce eventos de reserva en correos al cliente. Es
// un suscriptor externo al core: sus fallas se registran y no afectan la
// operación que emitió el evento.
type NotificadorEmail struct {
	emailClient    *email.Client
	reservaRepo    domain.ReservaRepository
	habitacionRepo domain.HabitacionRepository
	clienteRepo    domain.ClienteRepository
}

// NewNotificadorEmail crea una nueva instancia del notificador de correos
func NewNotificadorEmail(
	emailClient *email.Client,
	reservaRepo domain.ReservaRepository,
	habitacionRepo domain.HabitacionRepository,
	clienteRepo domain.ClienteRepository,
) *NotificadorEmail {
	return &NotificadorEmail{
		emailClient:    emailClient,
		reservaRepo:    reservaRepo,
		habitacionRepo: habitacionRepo,
		clienteRepo:    clienteRepo,
	}
}

// ManejarEvento implementa domain.Suscriptor
func (n *NotificadorEmail) ManejarEvento(evento domain.EventoReserva) {
	if n.emailClient == nil {
		return
	}

	switch evento.Tipo {
	case domain.EventoReservaConfirmada:
		n.enviar(evento, func(info email.ReservaInfo) error {
			return n.emailClient.SendReservaConfirmacion(info)
		})
	case domain.EventoReservaCancelada:
		n.enviar(evento, func(info email.ReservaInfo) error {
			return n.emailClient.SendReservaCancelacion(info)
		})
	}
}

func (n *NotificadorEmail) enviar(evento domain.EventoReserva, enviarFn func(email.ReservaInfo) error) {
	info, err := n.armarInfo(evento)
	if err != nil {
		log.Printf("Error al armar correo para reserva %d: %v", evento.ReservaID, err)
		return
	}

	if err := enviarFn(info); err != nil {
		log.Printf("Error al enviar correo de reserva %d: %v", evento.ReservaID, err)
	}
}

func (n *NotificadorEmail) armarInfo(evento domain.EventoReserva) (email.ReservaInfo, error) {
	reserva, err := n.reservaRepo.GetReservaByID(evento.ReservaID)
	if err != nil {
		return email.ReservaInfo{}, err
	}

	cliente, err := n.clienteRepo.GetClienteByID(reserva.ClienteID)
	if err != nil {
		return email.ReservaInfo{}, err
	}

	habitacion, err := n.habitacionRepo.GetHabitacionByID(reserva.HabitacionID)
	if err != nil {
		return email.ReservaInfo{}, err
	}

	return email.ReservaInfo{
		ID:                reserva.ID,
		Codigo:            reserva.Codigo,
		ClienteEmail:      cliente.Email,
		ClienteNombre:     cliente.Nombre,
		HabitacionNombre:  habitacion.Nombre,
		HabitacionNumero:  habitacion.Numero,
		FechaEntrada:      reserva.FechaEntrada,
		FechaSalida:       reserva.FechaSalida,
		CantidadHuespedes: reserva.CantidadHuespedes,
		Noches:            reserva.Noches(),
		Subtotal:          reserva.Subtotal,
		Impuesto:          reserva.Impuesto,
		Total:             reserva.Total,
		Motivo:            evento.Motivo,
	}, nil
}
