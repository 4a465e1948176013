package domain

// AccionReserva es una acción del ciclo de vida de una reserva
type AccionReserva string

const (
	AccionConfirmar AccionReserva = "confirmar"
	AccionCancelar  AccionReserva = "cancelar"
	AccionCompletar AccionReserva = "completar"
)

// transicionesReserva define las transiciones legales del ciclo de vida.
// Cancelada y Completada son terminales: no aparecen como origen.
var transicionesReserva = map[EstadoReserva]map[AccionReserva]EstadoReserva{
	ReservaPendiente: {
		AccionConfirmar: ReservaConfirmada,
		AccionCancelar:  ReservaCancelada,
	},
	ReservaConfirmada: {
		AccionCancelar:  ReservaCancelada,
		AccionCompletar: ReservaCompletada,
	},
}

// TransicionReserva devuelve el estado resultante de aplicar la acción al
// estado actual, o un *ErrorTransicion si la transición no es legal. No
// evalúa guardas (ventana de cancelación, fecha de salida); esas dependen
// de configuración y reloj y las aplica el servicio de reservas.
func TransicionReserva(actual EstadoReserva, accion AccionReserva) (EstadoReserva, error) {
	if siguiente, ok := transicionesReserva[actual][accion]; ok {
		return siguiente, nil
	}
	return actual, &ErrorTransicion{
		Entidad: "reserva",
		Desde:   string(actual),
		Accion:  string(accion),
	}
}
