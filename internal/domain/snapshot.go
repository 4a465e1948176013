package domain

import "time"

// SnapshotReserva es una copia inmutable del estado mutable de una reserva
// en un punto en el tiempo. El servicio la toma antes de operaciones de
// varios pasos para poder restaurar si un paso posterior falla.
type SnapshotReserva struct {
	ReservaID         int
	HabitacionID      int
	Estado            EstadoReserva
	EstadoHabitacion  EstadoHabitacion
	MotivoCancelacion string
	TomadoEn          time.Time
}

// TomarSnapshot captura el estado actual de la reserva y su habitación
func TomarSnapshot(reserva *Reserva, estadoHabitacion EstadoHabitacion, ahora time.Time) SnapshotReserva {
	return SnapshotReserva{
		ReservaID:         reserva.ID,
		HabitacionID:      reserva.HabitacionID,
		Estado:            reserva.Estado,
		EstadoHabitacion:  estadoHabitacion,
		MotivoCancelacion: reserva.MotivoCancelacion,
		TomadoEn:          ahora,
	}
}

// Historial es una pila de snapshots propiedad del llamador
type Historial struct {
	snapshots []SnapshotReserva
}

// Push agrega un snapshot al tope de la pila
func (h *Historial) Push(s SnapshotReserva) {
	h.snapshots = append(h.snapshots, s)
}

// Pop retira y devuelve el snapshot más reciente; ok es false si la pila
// está vacía
func (h *Historial) Pop() (SnapshotReserva, bool) {
	if len(h.snapshots) == 0 {
		return SnapshotReserva{}, false
	}
	ultimo := h.snapshots[len(h.snapshots)-1]
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return ultimo, true
}

// Len devuelve la cantidad de snapshots almacenados
func (h *Historial) Len() int {
	return len(h.snapshots)
}
