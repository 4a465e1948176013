package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Maxito7/hotel_core/internal/domain"
)

// Config agrupa toda la configuración del proceso, cargada una sola vez
// al inicio. Es inmutable: se pasa por valor a quien la necesite.
type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	Politica domain.ConfiguracionHotel
}

// LoadConfig lee el archivo .env (si existe) y las variables de entorno
func LoadConfig() (*Config, error) {
	// .env es opcional; en producción las variables vienen del entorno
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getenv("SERVER_PORT", "8080"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "hotel"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getenv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  getenv("SMTP_FROM_NAME", "Hotel Reservas"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),

		Politica: domain.ConfiguracionHotel{
			TasaImpuesto:           getenvFloat("TAX_RATE_PERCENT", 16),
			VentanaCancelacionDias: getenvInt("CANCELLATION_WINDOW_DAYS", 3),
			HoraCheckIn:            getenv("CHECK_IN_TIME", "14:00"),
			HoraCheckOut:           getenv("CHECK_OUT_TIME", "12:00"),
		},
	}

	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD es requerido")
	}

	return cfg, nil
}

// GetDBConnString construye la cadena de conexión de Postgres
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getenvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
