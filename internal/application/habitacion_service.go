package application

import (
	"fmt"

	"github.com/Maxito7/hotel_core/internal/domain"
)

// HabitacionService expone el inventario de habitaciones y las
// operaciones de mantenimiento sobre su estado de ocupación
type HabitacionService struct {
	habitacionRepo domain.HabitacionRepository
	cerrojos       *CerrojosPorClave
}

// NewHabitacionService crea una nueva instancia del servicio de
// habitaciones. Los cerrojos deben ser los mismos que usa el servicio de
// reservas para que las mutaciones de una habitación se serialicen entre
// ambos.
func NewHabitacionService(habitacionRepo domain.HabitacionRepository, cerrojos *CerrojosPorClave) *HabitacionService {
	if cerrojos == nil {
		cerrojos = NewCerrojosPorClave()
	}
	return &HabitacionService{
		habitacionRepo: habitacionRepo,
		cerrojos:       cerrojos,
	}
}

// GetAllHabitaciones retorna todas las habitaciones del hotel
func (s *HabitacionService) GetAllHabitaciones() ([]domain.Habitacion, error) {
	return s.habitacionRepo.GetAllHabitaciones()
}

// GetHabitacionByID obtiene una habitación por su ID
func (s *HabitacionService) GetHabitacionByID(id int) (*domain.Habitacion, error) {
	return s.habitacionRepo.GetHabitacionByID(id)
}

// IniciarMantenimiento saca una habitación disponible del inventario
func (s *HabitacionService) IniciarMantenimiento(id int) error {
	return s.aplicarOperacion(id, domain.OperacionMantenimiento)
}

// FinalizarMantenimiento devuelve una habitación al inventario
func (s *HabitacionService) FinalizarMantenimiento(id int) error {
	return s.aplicarOperacion(id, domain.OperacionLiberar)
}

// aplicarOperacion ejecuta una operación de la máquina de estados con la
// mutación serializada por habitación
func (s *HabitacionService) aplicarOperacion(id int, operacion domain.OperacionHabitacion) error {
	cerrojo := s.cerrojos.Obtener(ClaveHabitacion(id))
	cerrojo.Lock()
	defer cerrojo.Unlock()

	habitacion, err := s.habitacionRepo.GetHabitacionByID(id)
	if err != nil {
		return fmt.Errorf("error al obtener habitación: %w", err)
	}

	siguiente, err := domain.TransicionHabitacion(habitacion.Estado, operacion)
	if err != nil {
		return err
	}

	if err := s.habitacionRepo.UpdateEstado(id, siguiente); err != nil {
		return fmt.Errorf("error al actualizar estado de habitación: %w", err)
	}
	return nil
}
