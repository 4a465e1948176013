package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Maxito7/hotel_core/internal/domain"
)

var (
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	ReservaEventos = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hotel_reservation_events_total",
			Help: "Total number of reservation lifecycle events",
		},
		[]string{"tipo"},
	)
	ConflictosDisponibilidad = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hotel_availability_conflicts_total",
			Help: "Total number of rejected bookings due to date conflicts",
		},
	)
	TransicionesRechazadas = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hotel_rejected_transitions_total",
			Help: "Total number of rejected state transitions",
		},
	)
)

// Middleware registra contadores y latencia por request
func Middleware(c *fiber.Ctx) error {
	if c.Path() == "/metrics" {
		return c.Next()
	}
	start := time.Now()
	err := c.Next()
	duration := time.Since(start).Seconds()
	status := strconv.Itoa(c.Response().StatusCode())
	RequestTotal.WithLabelValues(c.Method(), c.Route().Path, status).Inc()
	RequestDuration.WithLabelValues(c.Method(), c.Route().Path).Observe(duration)
	return err
}

// SuscriptorMetricas cuenta los eventos del ciclo de vida de reservas
type SuscriptorMetricas struct{}

// ManejarEvento implementa domain.Suscriptor
func (SuscriptorMetricas) ManejarEvento(evento domain.EventoReserva) {
	ReservaEventos.WithLabelValues(string(evento.Tipo)).Inc()
}
