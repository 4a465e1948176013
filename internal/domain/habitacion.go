package domain

type EstadoHabitacion string

const (
	HabitacionDisponible    EstadoHabitacion = "Disponible"
	HabitacionReservada     EstadoHabitacion = "Reservada"
	HabitacionOcupada       EstadoHabitacion = "Ocupada"
	HabitacionMantenimiento EstadoHabitacion = "Mantenimiento"
)

// Habitacion represents a room in the hotel
type Habitacion struct {
	ID          int              `json:"id"`
	Nombre      string           `json:"nombre"`
	Numero      string           `json:"numero"`
	Tipo        string           `json:"tipo"`
	Capacidad   int              `json:"capacidad"`
	TarifaBase  float64          `json:"tarifaBase"`
	Estado      EstadoHabitacion `json:"estado"`
	Descripcion string           `json:"descripcion,omitempty"`
}

// HabitacionRepository defines the interface for room data operations
type HabitacionRepository interface {
	// GetHabitacionByID obtiene una habitación por su ID
	GetHabitacionByID(id int) (*Habitacion, error)
	// GetAllHabitaciones returns all rooms in the system
	GetAllHabitaciones() ([]Habitacion, error)
	// UpdateEstado actualiza el estado de ocupación de una habitación
	UpdateEstado(id int, estado EstadoHabitacion) error
}
