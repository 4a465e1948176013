package scheduler

import (
	"log"
	"time"
)

// CompletadorReservas es lo que el scheduler necesita del servicio de
// reservas
type CompletadorReservas interface {
	CompletarExpiradas() error
}

type ReservationScheduler struct {
	servicio CompletadorReservas
	ticker   *time.Ticker
}

// NewReservationScheduler crea una nueva instancia del scheduler de reservas
func NewReservationScheduler(servicio CompletadorReservas) *ReservationScheduler {
	return &ReservationScheduler{
		servicio: servicio,
	}
}

// Start inicia el scheduler que completa reservas expiradas cada 24 horas
func (s *ReservationScheduler) Start() {
	log.Println("Scheduler de reservas iniciado - se ejecutará cada 24 horas")

	// Ejecutar inmediatamente al iniciar
	s.completarExpiradas()

	// Programar ejecución diaria a las 00:01
	now := time.Now()
	nextRun := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 1, 0, 0, now.Location())
	durationUntilNextRun := time.Until(nextRun)

	log.Printf("Próxima ejecución programada: %s", nextRun.Format("2006-01-02 15:04:05"))

	time.AfterFunc(durationUntilNextRun, func() {
		s.completarExpiradas()

		s.ticker = time.NewTicker(24 * time.Hour)
		go func() {
			for range s.ticker.C {
				s.completarExpiradas()
			}
		}()
	})
}

// Stop detiene el scheduler
func (s *ReservationScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		log.Println("Scheduler de reservas detenido")
	}
}

// completarExpiradas completa las reservas cuya fecha de salida ya pasó
func (s *ReservationScheduler) completarExpiradas() {
	log.Println("Ejecutando actualización de reservas completadas...")

	if err := s.servicio.CompletarExpiradas(); err != nil {
		log.Printf("Error actualizando reservas completadas: %v", err)
	}
}
