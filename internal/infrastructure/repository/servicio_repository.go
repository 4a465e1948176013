package repository

import (
	"database/sql"
	"fmt"

	"github.com/Maxito7/hotel_core/internal/domain"
	"github.com/lib/pq"
)

type servicioRepository struct {
	db *sql.DB
}

// NewServicioRepository crea una nueva instancia del repositorio de servicios
func NewServicioRepository(db *sql.DB) domain.ServicioRepository {
	return &servicioRepository{db: db}
}

// GetAllServices retorna todos los servicios disponibles
func (r *servicioRepository) GetAllServices() ([]domain.Servicio, error) {
	query := `
		SELECT service_id, name, COALESCE(description, ''), price, status
		FROM service
		WHERE status = 1
		ORDER BY service_id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al obtener servicios: %w", err)
	}
	defer rows.Close()

	return escanearServicios(rows)
}

// GetServiciosByIDs retorna los servicios activos cuyos IDs se piden
func (r *servicioRepository) GetServiciosByIDs(ids []int) ([]domain.Servicio, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT service_id, name, COALESCE(description, ''), price, status
		FROM service
		WHERE service_id = ANY($1)
		AND status = 1
		ORDER BY service_id
	`

	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("error al obtener servicios: %w", err)
	}
	defer rows.Close()

	return escanearServicios(rows)
}

func escanearServicios(rows *sql.Rows) ([]domain.Servicio, error) {
	var servicios []domain.Servicio
	for rows.Next() {
		var s domain.Servicio
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.Status); err != nil {
			return nil, fmt.Errorf("error al escanear servicio: %w", err)
		}
		servicios = append(servicios, s)
	}

	return servicios, rows.Err()
}
