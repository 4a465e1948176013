package domain

// Cliente representa un cliente del hotel. El core lo referencia pero
// nunca lo muta; CantidadReservas alimenta la regla de fidelidad.
type Cliente struct {
	ID               int    `json:"id"`
	Nombre           string `json:"nombre"`
	Email            string `json:"email"`
	Telefono         string `json:"telefono,omitempty"`
	CantidadReservas int    `json:"cantidadReservas"`
}

// ClienteRepository define las operaciones con clientes
type ClienteRepository interface {
	// GetClienteByID obtiene un cliente por su ID
	GetClienteByID(id int) (*Cliente, error)
	// FindOrCreateByEmail busca un cliente por email y lo crea si no existe
	FindOrCreateByEmail(nombre, email, telefono string) (*Cliente, error)
	// CountReservas cuenta las reservas históricas de un cliente
	CountReservas(clienteID int) (int, error)
}
