package application

import (
	"testing"
	"time"

	"github.com/Maxito7/hotel_core/internal/domain"
)

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestVerificarDisponibilidad_SinReservas(t *testing.T) {
	ent := nuevoEntorno(fecha(2025, 3, 1))

	disponible, err := ent.service.VerificarDisponibilidad(1, fecha(2025, 3, 10), fecha(2025, 3, 13))
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if !disponible {
		t.Fatal("una habitación sin reservas debe estar disponible")
	}
}

func TestVerificarDisponibilidad_SolapamientoInclusivo(t *testing.T) {
	ent := nuevoEntorno(fecha(2025, 3, 1))

	// Reserva confirmada existente: 12 al 14 de marzo
	ent.reservas.reservas[1] = &domain.Reserva{
		ID:           1,
		HabitacionID: 1,
		FechaEntrada: fecha(2025, 3, 12),
		FechaSalida:  fecha(2025, 3, 14),
		Estado:       domain.ReservaConfirmada,
	}

	casos := []struct {
		nombre     string
		entrada    time.Time
		salida     time.Time
		disponible bool
	}{
		{"salida cae dentro del rango existente", fecha(2025, 3, 11), fecha(2025, 3, 13), false},
		{"entrada cae dentro del rango existente", fecha(2025, 3, 13), fecha(2025, 3, 16), false},
		{"contiene por completo al rango existente", fecha(2025, 3, 11), fecha(2025, 3, 15), false},
		{"salida igual a la entrada existente", fecha(2025, 3, 10), fecha(2025, 3, 12), false},
		{"entrada igual a la salida existente", fecha(2025, 3, 14), fecha(2025, 3, 16), false},
		{"termina un día antes", fecha(2025, 3, 10), fecha(2025, 3, 11), true},
		{"empieza un día después", fecha(2025, 3, 15), fecha(2025, 3, 17), true},
	}

	for _, caso := range casos {
		disponible, err := ent.service.VerificarDisponibilidad(1, caso.entrada, caso.salida)
		if err != nil {
			t.Fatalf("%s: error inesperado %v", caso.nombre, err)
		}
		if disponible != caso.disponible {
			t.Fatalf("%s: se esperaba disponible=%v", caso.nombre, caso.disponible)
		}
	}
}

func TestVerificarDisponibilidad_ReservasTerminalesNoBloquean(t *testing.T) {
	ent := nuevoEntorno(fecha(2025, 3, 1))

	ent.reservas.reservas[1] = &domain.Reserva{
		ID:           1,
		HabitacionID: 1,
		FechaEntrada: fecha(2025, 3, 12),
		FechaSalida:  fecha(2025, 3, 14),
		Estado:       domain.ReservaCancelada,
	}

	disponible, err := ent.service.VerificarDisponibilidad(1, fecha(2025, 3, 12), fecha(2025, 3, 14))
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if !disponible {
		t.Fatal("una reserva cancelada no debe bloquear la disponibilidad")
	}
}

func TestVerificarDisponibilidad_Mantenimiento(t *testing.T) {
	ent := nuevoEntorno(fecha(2025, 3, 1))

	disponible, err := ent.service.VerificarDisponibilidad(3, fecha(2025, 3, 10), fecha(2025, 3, 13))
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if disponible {
		t.Fatal("una habitación en mantenimiento nunca está disponible")
	}
}

func TestVerificarDisponibilidad_RangoInvalido(t *testing.T) {
	ent := nuevoEntorno(fecha(2025, 3, 1))

	if _, err := ent.service.VerificarDisponibilidad(1, fecha(2025, 3, 13), fecha(2025, 3, 10)); err == nil {
		t.Fatal("un rango con salida anterior a la entrada debe rechazarse")
	}
}

func TestVerificarDisponibilidad_ExcluyeReservaPropia(t *testing.T) {
	ent := nuevoEntorno(fecha(2025, 3, 1))
	disponibilidad := NewDisponibilidadService(ent.reservas, ent.habitaciones)

	ent.reservas.reservas[7] = &domain.Reserva{
		ID:           7,
		HabitacionID: 1,
		FechaEntrada: fecha(2025, 3, 12),
		FechaSalida:  fecha(2025, 3, 14),
		Estado:       domain.ReservaConfirmada,
	}

	disponible, err := disponibilidad.VerificarDisponibilidad(1, fecha(2025, 3, 12), fecha(2025, 3, 14), 7)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if !disponible {
		t.Fatal("la propia reserva excluida no debe contar como conflicto")
	}
}
