package domain

import (
	"testing"
)

func TestTransicionReserva_Legales(t *testing.T) {
	casos := []struct {
		desde  EstadoReserva
		accion AccionReserva
		hasta  EstadoReserva
	}{
		{ReservaPendiente, AccionConfirmar, ReservaConfirmada},
		{ReservaPendiente, AccionCancelar, ReservaCancelada},
		{ReservaConfirmada, AccionCancelar, ReservaCancelada},
		{ReservaConfirmada, AccionCompletar, ReservaCompletada},
	}

	for _, caso := range casos {
		siguiente, err := TransicionReserva(caso.desde, caso.accion)
		if err != nil {
			t.Fatalf("%s + %s: error inesperado %v", caso.desde, caso.accion, err)
		}
		if siguiente != caso.hasta {
			t.Fatalf("%s + %s: se esperaba %s, se obtuvo %s", caso.desde, caso.accion, caso.hasta, siguiente)
		}
	}
}

func TestTransicionReserva_Ilegales(t *testing.T) {
	casos := []struct {
		desde  EstadoReserva
		accion AccionReserva
	}{
		{ReservaPendiente, AccionCompletar},
		{ReservaConfirmada, AccionConfirmar},
		{ReservaCancelada, AccionConfirmar},
		{ReservaCancelada, AccionCancelar},
		{ReservaCancelada, AccionCompletar},
		{ReservaCompletada, AccionConfirmar},
		{ReservaCompletada, AccionCancelar},
		{ReservaCompletada, AccionCompletar},
	}

	for _, caso := range casos {
		siguiente, err := TransicionReserva(caso.desde, caso.accion)
		if err == nil {
			t.Fatalf("%s + %s: se esperaba error", caso.desde, caso.accion)
		}
		if !EsTransicionInvalida(err) {
			t.Fatalf("%s + %s: se esperaba ErrorTransicion, se obtuvo %v", caso.desde, caso.accion, err)
		}
		if siguiente != caso.desde {
			t.Fatalf("una transición rechazada no debe cambiar el estado: %s → %s", caso.desde, siguiente)
		}
	}
}

func TestEstadosTerminales(t *testing.T) {
	if !ReservaCancelada.EsTerminal() || !ReservaCompletada.EsTerminal() {
		t.Fatal("Cancelada y Completada deben ser terminales")
	}
	if ReservaPendiente.EsTerminal() || ReservaConfirmada.EsTerminal() {
		t.Fatal("Pendiente y Confirmada no son terminales")
	}
}
