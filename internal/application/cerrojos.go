package application

import (
	"fmt"
	"sync"
)

// CerrojosPorClave serializa las mutaciones por reserva y por habitación:
// las transiciones de una misma reserva (o de una misma habitación) nunca
// corren concurrentes. Los cerrojos se crean bajo demanda y se retienen;
// el universo de claves es el inventario del hotel, acotado. Todos los
// servicios que mutan habitaciones comparten la misma instancia, y cuando
// una operación necesita ambos cerrojos toma primero el de la reserva y
// después el de la habitación.
type CerrojosPorClave struct {
	mu       sync.Mutex
	cerrojos map[string]*sync.Mutex
}

// NewCerrojosPorClave crea un nuevo mapa de cerrojos por clave
func NewCerrojosPorClave() *CerrojosPorClave {
	return &CerrojosPorClave{
		cerrojos: make(map[string]*sync.Mutex),
	}
}

// Obtener devuelve el cerrojo asociado a la clave, creándolo si no existe
func (c *CerrojosPorClave) Obtener(clave string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	cerrojo, existe := c.cerrojos[clave]
	if !existe {
		cerrojo = &sync.Mutex{}
		c.cerrojos[clave] = cerrojo
	}
	return cerrojo
}

// ClaveReserva construye la clave de serialización de una reserva
func ClaveReserva(id int) string {
	return fmt.Sprintf("reserva:%d", id)
}

// ClaveHabitacion construye la clave de serialización de una habitación
func ClaveHabitacion(id int) string {
	return fmt.Sprintf("habitacion:%d", id)
}
