package application

import (
	"testing"
	"time"
)

func contextoPrecio(entrada time.Time, reservasPrevias int, ahora time.Time) ContextoPrecio {
	return ContextoPrecio{
		FechaEntrada:    entrada,
		ReservasPrevias: reservasPrevias,
		Ahora:           ahora,
	}
}

func TestPrecioNormal(t *testing.T) {
	// 800 × 3 noches = 2400 (escenario base de referencia)
	entrada := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	ahora := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	subtotal := CalcularSubtotalHabitacion(800, 3, PrecioNormal, contextoPrecio(entrada, 0, ahora))
	if subtotal != 2400 {
		t.Fatalf("se esperaba 2400, se obtuvo %.2f", subtotal)
	}
}

func TestPrecioTemporada(t *testing.T) {
	ahora := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	casos := []struct {
		mes      time.Month
		esperado float64
	}{
		{time.July, 1500},
		{time.August, 1500},
		{time.December, 1500},
		{time.March, 1000},
		{time.November, 1000},
	}

	for _, caso := range casos {
		entrada := time.Date(2025, caso.mes, 15, 0, 0, 0, 0, time.UTC)
		subtotal := CalcularSubtotalHabitacion(500, 2, PrecioTemporada, contextoPrecio(entrada, 0, ahora))
		if subtotal != caso.esperado {
			t.Fatalf("mes %s: se esperaba %.2f, se obtuvo %.2f", caso.mes, caso.esperado, subtotal)
		}
	}
}

func TestPrecioFidelidad(t *testing.T) {
	entrada := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	ahora := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	casos := []struct {
		reservasPrevias int
		esperado        float64
	}{
		{12, 1600}, // 20%: 1000 × 2 × 0.80
		{10, 1600},
		{7, 1700}, // 15%
		{5, 1700},
		{3, 1800}, // 10%
		{2, 2000}, // sin descuento
		{0, 2000},
	}

	for _, caso := range casos {
		subtotal := CalcularSubtotalHabitacion(1000, 2, PrecioFidelidad, contextoPrecio(entrada, caso.reservasPrevias, ahora))
		if subtotal != caso.esperado {
			t.Fatalf("%d reservas previas: se esperaba %.2f, se obtuvo %.2f",
				caso.reservasPrevias, caso.esperado, subtotal)
		}
	}
}

func TestPrecioUltimoMinuto(t *testing.T) {
	ahora := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	casos := []struct {
		entrada  time.Time
		esperado float64
	}{
		{time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 700},  // hoy: 30%
		{time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), 700},  // 2 días: 30%
		{time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), 850},  // 3 días: 15%
		{time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), 850},  // 5 días: 15%
		{time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), 1000}, // 10 días: normal
	}

	for _, caso := range casos {
		subtotal := CalcularSubtotalHabitacion(1000, 1, PrecioUltimoMinuto, contextoPrecio(caso.entrada, 0, ahora))
		if subtotal != caso.esperado {
			t.Fatalf("entrada %s: se esperaba %.2f, se obtuvo %.2f",
				caso.entrada.Format("2006-01-02"), caso.esperado, subtotal)
		}
	}
}

func TestPrecio_Determinismo(t *testing.T) {
	entrada := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	ahora := time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC)
	ctx := contextoPrecio(entrada, 6, ahora)

	primero := CalcularSubtotalHabitacion(937.50, 4, PrecioFidelidad, ctx)
	for i := 0; i < 100; i++ {
		if otro := CalcularSubtotalHabitacion(937.50, 4, PrecioFidelidad, ctx); otro != primero {
			t.Fatalf("el cálculo debe ser determinista: %.10f != %.10f", primero, otro)
		}
	}
}

func TestRedondear2(t *testing.T) {
	casos := []struct {
		entrada  float64
		esperado float64
	}{
		{0.125, 0.13}, // .5 redondea hacia arriba
		{0.375, 0.38},
		{1.114, 1.11},
		{384.0, 384.0},
	}

	for _, caso := range casos {
		if r := Redondear2(caso.entrada); r != caso.esperado {
			t.Fatalf("Redondear2(%v): se esperaba %v, se obtuvo %v", caso.entrada, caso.esperado, r)
		}
	}
}

func TestEsReglaValida(t *testing.T) {
	for _, regla := range []ReglaPrecio{PrecioNormal, PrecioTemporada, PrecioFidelidad, PrecioUltimoMinuto} {
		if !EsReglaValida(regla) {
			t.Fatalf("la regla %s debe ser válida", regla)
		}
	}
	if EsReglaValida("dinamica") {
		t.Fatal("una regla fuera del conjunto cerrado no debe ser válida")
	}
}
