package application

import (
	"log"
	"strconv"

	"github.com/Maxito7/hotel_core/internal/domain"
)

// Claves de política en la tabla hotel_configuration
const (
	ClaveTasaImpuesto       = "tax_rate_percent"
	ClaveVentanaCancelacion = "cancellation_window_days"
	ClaveHoraCheckIn        = "check_in_time"
	ClaveHoraCheckOut       = "check_out_time"
)

type ConfigService struct {
	repo domain.ConfigurationRepository
}

func NewConfigService(repo domain.ConfigurationRepository) *ConfigService {
	return &ConfigService{repo: repo}
}

// GetAllConfigs retorna todas las entradas de configuración
func (s *ConfigService) GetAllConfigs() ([]*domain.HotelConfiguration, error) {
	return s.repo.GetAll()
}

// CargarPolitica construye la política vigente del hotel leyendo la tabla
// de configuración; cada clave ausente o inválida conserva el valor por
// defecto recibido. El resultado se inyecta como valor inmutable.
func (s *ConfigService) CargarPolitica(defecto domain.ConfiguracionHotel) domain.ConfiguracionHotel {
	politica := defecto

	if v, ok := s.leerFloat(ClaveTasaImpuesto); ok {
		politica.TasaImpuesto = v
	}
	if v, ok := s.leerInt(ClaveVentanaCancelacion); ok {
		politica.VentanaCancelacionDias = v
	}
	if v, ok := s.leer(ClaveHoraCheckIn); ok {
		politica.HoraCheckIn = v
	}
	if v, ok := s.leer(ClaveHoraCheckOut); ok {
		politica.HoraCheckOut = v
	}

	return politica
}

func (s *ConfigService) leer(clave string) (string, bool) {
	config, err := s.repo.GetByKey(clave)
	if err != nil {
		return "", false
	}
	return config.ConfigValue, true
}

func (s *ConfigService) leerFloat(clave string) (float64, bool) {
	valor, ok := s.leer(clave)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(valor, 64)
	if err != nil {
		log.Printf("Valor inválido para %s: %q", clave, valor)
		return 0, false
	}
	return v, true
}

func (s *ConfigService) leerInt(clave string) (int, bool) {
	valor, ok := s.leer(clave)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(valor)
	if err != nil {
		log.Printf("Valor inválido para %s: %q", clave, valor)
		return 0, false
	}
	return v, true
}
