package application

import (
	"fmt"
	"time"

	"github.com/Maxito7/hotel_core/internal/domain"
)

// DisponibilidadService verifica si un rango de fechas de una habitación
// entra en conflicto con reservas existentes
type DisponibilidadService struct {
	reservaRepo    domain.ReservaRepository
	habitacionRepo domain.HabitacionRepository
}

// NewDisponibilidadService crea una nueva instancia del servicio de
// disponibilidad
func NewDisponibilidadService(reservaRepo domain.ReservaRepository, habitacionRepo domain.HabitacionRepository) *DisponibilidadService {
	return &DisponibilidadService{
		reservaRepo:    reservaRepo,
		habitacionRepo: habitacionRepo,
	}
}

// VerificarDisponibilidad indica si la habitación está libre en el rango
// [entrada, salida]. excluirReservaID (si es > 0) omite esa reserva de la
// verificación, para re-chequeos durante la edición de una reserva.
// Una habitación en mantenimiento nunca está disponible.
func (s *DisponibilidadService) VerificarDisponibilidad(habitacionID int, entrada, salida time.Time, excluirReservaID int) (bool, error) {
	if !salida.After(entrada) {
		return false, fmt.Errorf("la fecha de salida debe ser posterior a la fecha de entrada")
	}

	habitacion, err := s.habitacionRepo.GetHabitacionByID(habitacionID)
	if err != nil {
		return false, fmt.Errorf("error al obtener habitación: %w", err)
	}

	if habitacion.Estado == domain.HabitacionMantenimiento {
		return false, nil
	}

	activas, err := s.reservaRepo.GetReservasActivas(habitacionID, excluirReservaID)
	if err != nil {
		return false, fmt.Errorf("error al verificar disponibilidad: %w", err)
	}

	for _, reserva := range activas {
		if seSolapan(entrada, salida, reserva.FechaEntrada, reserva.FechaSalida) {
			return false, nil
		}
	}

	return true, nil
}

// seSolapan aplica la regla de solapamiento con límites inclusivos: hay
// conflicto si la entrada o la salida caen dentro del intervalo existente,
// o si el rango propuesto lo contiene por completo. Un checkout y un
// check-in el mismo día cuentan como conflicto.
func seSolapan(entrada, salida, existenteEntrada, existenteSalida time.Time) bool {
	entrada = soloFecha(entrada)
	salida = soloFecha(salida)
	existenteEntrada = soloFecha(existenteEntrada)
	existenteSalida = soloFecha(existenteSalida)

	entradaDentro := !entrada.Before(existenteEntrada) && !entrada.After(existenteSalida)
	salidaDentro := !salida.Before(existenteEntrada) && !salida.After(existenteSalida)
	contiene := !existenteEntrada.Before(entrada) && !existenteSalida.After(salida)

	return entradaDentro || salidaDentro || contiene
}

// soloFecha trunca a granularidad de día en UTC
func soloFecha(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
