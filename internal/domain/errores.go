package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoEncontrado indica que un cliente, habitación, servicio o reserva
// no existe
var ErrNoEncontrado = errors.New("recurso no encontrado")

// ErrorConflicto indica que la habitación no está disponible para las
// fechas solicitadas
type ErrorConflicto struct {
	HabitacionID int
	FechaEntrada time.Time
	FechaSalida  time.Time
}

func (e *ErrorConflicto) Error() string {
	return fmt.Sprintf("la habitación %d no está disponible entre %s y %s",
		e.HabitacionID,
		e.FechaEntrada.Format("2006-01-02"),
		e.FechaSalida.Format("2006-01-02"))
}

// ErrorTransicion indica que la transición solicitada no es legal desde el
// estado actual; no se realiza ninguna mutación
type ErrorTransicion struct {
	Entidad string
	Desde   string
	Accion  string
}

func (e *ErrorTransicion) Error() string {
	return fmt.Sprintf("transición inválida de %s: %q no se permite desde el estado %q",
		e.Entidad, e.Accion, e.Desde)
}

// ErrorPolitica indica que una guarda de política rechazó la operación,
// por ejemplo cancelar dentro de la ventana no reembolsable
type ErrorPolitica struct {
	Motivo string
}

func (e *ErrorPolitica) Error() string {
	return fmt.Sprintf("violación de política: %s", e.Motivo)
}

// EsConflicto reporta si err es un conflicto de disponibilidad
func EsConflicto(err error) bool {
	var conflicto *ErrorConflicto
	return errors.As(err, &conflicto)
}

// EsTransicionInvalida reporta si err es una transición de estado ilegal
func EsTransicionInvalida(err error) bool {
	var transicion *ErrorTransicion
	return errors.As(err, &transicion)
}

// EsViolacionPolitica reporta si err es una violación de política
func EsViolacionPolitica(err error) bool {
	var politica *ErrorPolitica
	return errors.As(err, &politica)
}
