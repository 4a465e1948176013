package domain

import "time"

// ConfiguracionHotel agrupa la política vigente del hotel. Se carga una
// vez al inicio y se inyecta como valor inmutable a cada componente.
type ConfiguracionHotel struct {
	TasaImpuesto           float64 `json:"tasaImpuesto"` // porcentaje, ej. 16
	VentanaCancelacionDias int     `json:"ventanaCancelacionDias"`
	HoraCheckIn            string  `json:"horaCheckIn"`  // formato HH:MM
	HoraCheckOut           string  `json:"horaCheckOut"` // formato HH:MM
}

type HotelConfiguration struct {
	ID          int       `json:"id"`
	ConfigKey   string    `json:"config_key"`
	ConfigValue string    `json:"config_value"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ConfigurationRepository interface {
	GetByKey(key string) (*HotelConfiguration, error)
	GetAll() ([]*HotelConfiguration, error)
}
