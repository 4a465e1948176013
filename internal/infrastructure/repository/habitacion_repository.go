package repository

import (
	"database/sql"
	"fmt"

	"github.com/Maxito7/hotel_core/internal/domain"
)

type habitacionRepository struct {
	db *sql.DB
}

// NewHabitacionRepository creates a new instance of habitacionRepository
func NewHabitacionRepository(db *sql.DB) domain.HabitacionRepository {
	return &habitacionRepository{
		db: db,
	}
}

// GetHabitacionByID obtiene una habitación por su ID
func (r *habitacionRepository) GetHabitacionByID(id int) (*domain.Habitacion, error) {
	query := `
		SELECT
			h.room_id,
			h.name,
			h.number,
			h.room_type,
			h.capacity,
			h.base_rate,
			h.status,
			COALESCE(h.general_description, '')
		FROM room h
		WHERE h.room_id = $1
	`

	habitacion := &domain.Habitacion{}
	err := r.db.QueryRow(query, id).Scan(
		&habitacion.ID,
		&habitacion.Nombre,
		&habitacion.Numero,
		&habitacion.Tipo,
		&habitacion.Capacidad,
		&habitacion.TarifaBase,
		&habitacion.Estado,
		&habitacion.Descripcion,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("habitación con ID %d: %w", id, domain.ErrNoEncontrado)
		}
		return nil, fmt.Errorf("error al obtener habitación: %w", err)
	}

	return habitacion, nil
}

// GetAllHabitaciones implements domain.HabitacionRepository
func (r *habitacionRepository) GetAllHabitaciones() ([]domain.Habitacion, error) {
	query := `
		SELECT
			h.room_id,
			h.name,
			h.number,
			h.room_type,
			h.capacity,
			h.base_rate,
			h.status,
			COALESCE(h.general_description, '')
		FROM room h
		ORDER BY h.room_id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying database: %w", err)
	}
	defer rows.Close()

	var habitaciones []domain.Habitacion
	for rows.Next() {
		var h domain.Habitacion
		err := rows.Scan(
			&h.ID,
			&h.Nombre,
			&h.Numero,
			&h.Tipo,
			&h.Capacidad,
			&h.TarifaBase,
			&h.Estado,
			&h.Descripcion,
		)
		if err != nil {
			return nil, err
		}
		habitaciones = append(habitaciones, h)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return habitaciones, nil
}

// UpdateEstado actualiza el estado de ocupación de una habitación
func (r *habitacionRepository) UpdateEstado(id int, estado domain.EstadoHabitacion) error {
	query := `
		UPDATE room
		SET status = $1
		WHERE room_id = $2
	`

	result, err := r.db.Exec(query, estado, id)
	if err != nil {
		return fmt.Errorf("error al actualizar estado de habitación: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar filas afectadas: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("habitación con ID %d: %w", id, domain.ErrNoEncontrado)
	}

	return nil
}
