package domain

// Servicio representa un servicio del catálogo del hotel
type Servicio struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Status      int     `json:"status"`
}

// ServicioRepository define la interfaz de lectura del catálogo de
// servicios; el core solo lo consulta, nunca lo modifica
type ServicioRepository interface {
	// GetAllServices retorna todos los servicios disponibles
	GetAllServices() ([]Servicio, error)
	// GetServiciosByIDs retorna los servicios activos cuyos IDs se piden;
	// los IDs desconocidos simplemente no aparecen en el resultado
	GetServiciosByIDs(ids []int) ([]Servicio, error)
}
