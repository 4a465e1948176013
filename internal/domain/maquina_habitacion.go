package domain

// OperacionHabitacion es una operación sobre el estado de ocupación
type OperacionHabitacion string

const (
	OperacionReservar      OperacionHabitacion = "reservar"
	OperacionOcupar        OperacionHabitacion = "ocupar"
	OperacionLiberar       OperacionHabitacion = "liberar"
	OperacionMantenimiento OperacionHabitacion = "mantenimiento"
)

// transicionesHabitacion define la legalidad de cada operación por estado.
// Liberar desde Mantenimiento devuelve la habitación al inventario.
var transicionesHabitacion = map[EstadoHabitacion]map[OperacionHabitacion]EstadoHabitacion{
	HabitacionDisponible: {
		OperacionReservar:      HabitacionReservada,
		OperacionOcupar:        HabitacionOcupada,
		OperacionMantenimiento: HabitacionMantenimiento,
	},
	HabitacionReservada: {
		OperacionOcupar:  HabitacionOcupada,
		OperacionLiberar: HabitacionDisponible,
	},
	HabitacionOcupada: {
		OperacionLiberar: HabitacionDisponible,
	},
	HabitacionMantenimiento: {
		OperacionLiberar: HabitacionDisponible,
	},
}

// TransicionHabitacion devuelve el estado resultante de aplicar la
// operación, o un *ErrorTransicion si la operación no es legal desde el
// estado actual. Nunca muta parcialmente: o hay estado nuevo o no hay nada.
func TransicionHabitacion(actual EstadoHabitacion, operacion OperacionHabitacion) (EstadoHabitacion, error) {
	if siguiente, ok := transicionesHabitacion[actual][operacion]; ok {
		return siguiente, nil
	}
	return actual, &ErrorTransicion{
		Entidad: "habitacion",
		Desde:   string(actual),
		Accion:  string(operacion),
	}
}
