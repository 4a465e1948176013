package repository

import (
	"database/sql"
	"fmt"

	"github.com/Maxito7/hotel_core/internal/domain"
)

type clienteRepository struct {
	db *sql.DB
}

// NewClienteRepository crea una nueva instancia del repositorio de clientes
func NewClienteRepository(db *sql.DB) domain.ClienteRepository {
	return &clienteRepository{db: db}
}

// GetClienteByID obtiene un cliente por su ID con su conteo histórico de
// reservas
func (r *clienteRepository) GetClienteByID(id int) (*domain.Cliente, error) {
	query := `
		SELECT
			c.client_id,
			c.name,
			c.email,
			COALESCE(c.phone, ''),
			(SELECT COUNT(*) FROM reservation r WHERE r.client_id = c.client_id) AS reservation_count
		FROM client c
		WHERE c.client_id = $1
	`

	cliente := &domain.Cliente{}
	err := r.db.QueryRow(query, id).Scan(
		&cliente.ID,
		&cliente.Nombre,
		&cliente.Email,
		&cliente.Telefono,
		&cliente.CantidadReservas,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("cliente con ID %d: %w", id, domain.ErrNoEncontrado)
		}
		return nil, fmt.Errorf("error al obtener cliente: %w", err)
	}

	return cliente, nil
}

// FindOrCreateByEmail busca un cliente por email y lo crea si no existe
func (r *clienteRepository) FindOrCreateByEmail(nombre, email, telefono string) (*domain.Cliente, error) {
	query := `
		SELECT
			c.client_id,
			c.name,
			c.email,
			COALESCE(c.phone, ''),
			(SELECT COUNT(*) FROM reservation r WHERE r.client_id = c.client_id) AS reservation_count
		FROM client c
		WHERE c.email = $1
	`

	cliente := &domain.Cliente{}
	err := r.db.QueryRow(query, email).Scan(
		&cliente.ID,
		&cliente.Nombre,
		&cliente.Email,
		&cliente.Telefono,
		&cliente.CantidadReservas,
	)

	if err == nil {
		return cliente, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("error al buscar cliente: %w", err)
	}

	insertQuery := `
		INSERT INTO client (name, email, phone)
		VALUES ($1, $2, $3)
		RETURNING client_id
	`

	err = r.db.QueryRow(insertQuery, nombre, email, telefono).Scan(&cliente.ID)
	if err != nil {
		return nil, fmt.Errorf("error al crear cliente: %w", err)
	}

	cliente.Nombre = nombre
	cliente.Email = email
	cliente.Telefono = telefono
	cliente.CantidadReservas = 0

	return cliente, nil
}

// CountReservas cuenta las reservas históricas de un cliente
func (r *clienteRepository) CountReservas(clienteID int) (int, error) {
	query := `SELECT COUNT(*) FROM reservation WHERE client_id = $1`

	var total int
	if err := r.db.QueryRow(query, clienteID).Scan(&total); err != nil {
		return 0, fmt.Errorf("error al contar reservas del cliente: %w", err)
	}

	return total, nil
}
