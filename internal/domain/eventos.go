package domain

import "time"

// TipoEvento identifica un evento de dominio del ciclo de vida de reservas
type TipoEvento string

const (
	EventoReservaCreada     TipoEvento = "reserva.creada"
	EventoReservaConfirmada TipoEvento = "reserva.confirmada"
	EventoReservaCancelada  TipoEvento = "reserva.cancelada"
	EventoReservaCompletada TipoEvento = "reserva.completada"
)

// EventoReserva se emite después de cada transición exitosa. La entrega a
// los suscriptores (correo, auditoría) queda fuera del core.
type EventoReserva struct {
	ID         string        `json:"id"`
	Tipo       TipoEvento    `json:"tipo"`
	ReservaID  int           `json:"reservaId"`
	ClienteID  int           `json:"clienteId"`
	Estado     EstadoReserva `json:"estado"`
	Motivo     string        `json:"motivo,omitempty"`
	OcurridoEn time.Time     `json:"ocurridoEn"`
}

// Suscriptor recibe eventos de reserva. Los errores del suscriptor no
// deben afectar la operación que emitió el evento.
type Suscriptor interface {
	ManejarEvento(evento EventoReserva)
}
