package application

import (
	"math"
	"time"
)

// ReglaPrecio identifica una regla de precios del conjunto cerrado. Las
// reglas nunca se combinan entre sí; el llamador elige una.
type ReglaPrecio string

const (
	PrecioNormal       ReglaPrecio = "normal"
	PrecioTemporada    ReglaPrecio = "temporada"
	PrecioFidelidad    ReglaPrecio = "fidelidad"
	PrecioUltimoMinuto ReglaPrecio = "ultimo_minuto"
)

// EsReglaValida reporta si la regla pertenece al conjunto cerrado
func EsReglaValida(regla ReglaPrecio) bool {
	switch regla {
	case PrecioNormal, PrecioTemporada, PrecioFidelidad, PrecioUltimoMinuto:
		return true
	}
	return false
}

// ContextoPrecio lleva los datos de la reserva que algunas reglas
// necesitan. Ahora se inyecta para que el cálculo sea determinista.
type ContextoPrecio struct {
	FechaEntrada    time.Time
	ReservasPrevias int
	Ahora           time.Time
}

// CalcularSubtotalHabitacion calcula el subtotal de noches de habitación
// para la regla elegida. Es una función pura: mismas entradas, misma
// salida. El impuesto y el total los calcula el servicio de reservas.
func CalcularSubtotalHabitacion(tarifaBase float64, noches int, regla ReglaPrecio, ctx ContextoPrecio) float64 {
	base := tarifaBase * float64(noches)

	switch regla {
	case PrecioTemporada:
		if esTemporadaAlta(ctx.FechaEntrada.Month()) {
			return base * 1.5
		}
		return base
	case PrecioFidelidad:
		return base * (1 - descuentoFidelidad(ctx.ReservasPrevias))
	case PrecioUltimoMinuto:
		dias := diasHasta(ctx.Ahora, ctx.FechaEntrada)
		switch {
		case dias <= 2:
			return base * 0.70
		case dias <= 5:
			return base * 0.85
		}
		return base
	default:
		return base
	}
}

// descuentoFidelidad devuelve la fracción de descuento por reservas previas
func descuentoFidelidad(reservasPrevias int) float64 {
	switch {
	case reservasPrevias >= 10:
		return 0.20
	case reservasPrevias >= 5:
		return 0.15
	case reservasPrevias >= 3:
		return 0.10
	}
	return 0
}

// esTemporadaAlta reporta si el mes pertenece a la temporada alta
func esTemporadaAlta(mes time.Month) bool {
	return mes == time.July || mes == time.August || mes == time.December
}

// diasHasta cuenta los días calendario entre dos fechas
func diasHasta(desde, hasta time.Time) int {
	d := time.Date(desde.Year(), desde.Month(), desde.Day(), 0, 0, 0, 0, time.UTC)
	h := time.Date(hasta.Year(), hasta.Month(), hasta.Day(), 0, 0, 0, 0, time.UTC)
	return int(h.Sub(d).Hours() / 24)
}

// Redondear2 redondea a 2 decimales con redondeo hacia arriba en .5
func Redondear2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
