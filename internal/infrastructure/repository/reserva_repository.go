package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/Maxito7/hotel_core/internal/domain"
	"github.com/lib/pq"
)

type reservaRepository struct {
	db *sql.DB
}

// NewReservaRepository crea una nueva instancia del repositorio de reservas
func NewReservaRepository(db *sql.DB) domain.ReservaRepository {
	return &reservaRepository{db: db}
}

// GetReservaByID obtiene una reserva por su ID con sus servicios
func (r *reservaRepository) GetReservaByID(id int) (*domain.Reserva, error) {
	query := `
		SELECT
			r.reservation_id,
			r.code,
			r.client_id,
			r.room_id,
			r.check_in_date,
			r.check_out_date,
			r.guests_count,
			r.status,
			r.subtotal,
			r.tax,
			r.total,
			COALESCE(r.note, ''),
			COALESCE(r.cancellation_reason, ''),
			r.creation_date
		FROM reservation r
		WHERE r.reservation_id = $1
	`

	reserva := &domain.Reserva{}
	err := r.db.QueryRow(query, id).Scan(
		&reserva.ID,
		&reserva.Codigo,
		&reserva.ClienteID,
		&reserva.HabitacionID,
		&reserva.FechaEntrada,
		&reserva.FechaSalida,
		&reserva.CantidadHuespedes,
		&reserva.Estado,
		&reserva.Subtotal,
		&reserva.Impuesto,
		&reserva.Total,
		&reserva.Nota,
		&reserva.MotivoCancelacion,
		&reserva.FechaCreacion,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("reserva con ID %d: %w", id, domain.ErrNoEncontrado)
		}
		return nil, fmt.Errorf("error al obtener reserva: %w", err)
	}

	servicios, err := r.getServiciosReserva(id)
	if err != nil {
		return nil, err
	}
	reserva.Servicios = servicios

	return reserva, nil
}

// CreateReserva crea una nueva reserva verificando el solapamiento dentro
// de la misma transacción serializable. De dos escritores en carrera solo
// uno confirma; el perdedor recibe un *ErrorConflicto.
func (r *reservaRepository) CreateReserva(reserva *domain.Reserva) error {
	ctx := context.Background()
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer tx.Rollback()

	// Bloquear la fila de la habitación serializa los creadores
	// concurrentes sobre la misma habitación
	var habitacionID int
	err = tx.QueryRow(`SELECT room_id FROM room WHERE room_id = $1 FOR UPDATE`, reserva.HabitacionID).Scan(&habitacionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("habitación con ID %d: %w", reserva.HabitacionID, domain.ErrNoEncontrado)
		}
		return fmt.Errorf("error al bloquear habitación: %w", err)
	}

	// Re-verificar el solapamiento con límites inclusivos ya dentro de la
	// transacción; la verificación previa del pipeline corrió sin bloqueo
	overlapQuery := `
		SELECT COUNT(*)
		FROM reservation
		WHERE room_id = $1
		AND status IN ('Pendiente', 'Confirmada')
		AND (
			(check_in_date <= $2 AND check_out_date >= $2)
			OR (check_in_date <= $3 AND check_out_date >= $3)
			OR (check_in_date >= $2 AND check_out_date <= $3)
		)
	`

	var conflictos int
	err = tx.QueryRow(overlapQuery, reserva.HabitacionID, reserva.FechaEntrada, reserva.FechaSalida).Scan(&conflictos)
	if err != nil {
		return fmt.Errorf("error al verificar solapamiento: %w", err)
	}
	if conflictos > 0 {
		return &domain.ErrorConflicto{
			HabitacionID: reserva.HabitacionID,
			FechaEntrada: reserva.FechaEntrada,
			FechaSalida:  reserva.FechaSalida,
		}
	}

	insertQuery := `
		INSERT INTO reservation (
			code,
			client_id,
			room_id,
			check_in_date,
			check_out_date,
			guests_count,
			status,
			subtotal,
			tax,
			total,
			note,
			creation_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING reservation_id
	`

	err = tx.QueryRow(
		insertQuery,
		reserva.Codigo,
		reserva.ClienteID,
		reserva.HabitacionID,
		reserva.FechaEntrada,
		reserva.FechaSalida,
		reserva.CantidadHuespedes,
		reserva.Estado,
		reserva.Subtotal,
		reserva.Impuesto,
		reserva.Total,
		reserva.Nota,
		reserva.FechaCreacion,
	).Scan(&reserva.ID)

	if err != nil {
		return traducirErrorPg(err, reserva)
	}

	for _, linea := range reserva.Servicios {
		servicioQuery := `
			INSERT INTO reservation_service (
				reservation_id,
				service_id,
				name,
				quantity,
				unit_price
			) VALUES ($1, $2, $3, $4, $5)
		`

		_, err = tx.Exec(
			servicioQuery,
			reserva.ID,
			linea.ServicioID,
			linea.Nombre,
			linea.Cantidad,
			linea.PrecioUnitario,
		)
		if err != nil {
			return fmt.Errorf("error al crear servicio de reserva: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return traducirErrorPg(err, reserva)
	}

	return nil
}

// UpdateReservaEstado actualiza el estado de una reserva
func (r *reservaRepository) UpdateReservaEstado(id int, estado domain.EstadoReserva, motivo string) error {
	query := `
		UPDATE reservation
		SET status = $1,
		    cancellation_reason = CASE WHEN $2 <> '' THEN $2 ELSE cancellation_reason END
		WHERE reservation_id = $3
	`

	result, err := r.db.Exec(query, estado, motivo, id)
	if err != nil {
		return fmt.Errorf("error al actualizar estado de reserva: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar filas afectadas: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("reserva con ID %d: %w", id, domain.ErrNoEncontrado)
	}

	return nil
}

// GetReservasActivas obtiene las reservas Pendientes o Confirmadas de una
// habitación, excluyendo opcionalmente una reserva
func (r *reservaRepository) GetReservasActivas(habitacionID int, excluirID int) ([]domain.Reserva, error) {
	query := `
		SELECT
			r.reservation_id,
			r.code,
			r.client_id,
			r.room_id,
			r.check_in_date,
			r.check_out_date,
			r.guests_count,
			r.status,
			r.subtotal,
			r.tax,
			r.total,
			r.creation_date
		FROM reservation r
		WHERE r.room_id = $1
		AND r.status IN ('Pendiente', 'Confirmada')
		AND ($2 = 0 OR r.reservation_id <> $2)
		ORDER BY r.check_in_date
	`

	rows, err := r.db.Query(query, habitacionID, excluirID)
	if err != nil {
		return nil, fmt.Errorf("error al obtener reservas activas: %w", err)
	}
	defer rows.Close()

	return escanearReservas(rows)
}

// GetReservasCliente obtiene todas las reservas de un cliente
func (r *reservaRepository) GetReservasCliente(clienteID int) ([]domain.Reserva, error) {
	query := `
		SELECT
			r.reservation_id,
			r.code,
			r.client_id,
			r.room_id,
			r.check_in_date,
			r.check_out_date,
			r.guests_count,
			r.status,
			r.subtotal,
			r.tax,
			r.total,
			r.creation_date
		FROM reservation r
		WHERE r.client_id = $1
		ORDER BY r.creation_date DESC
	`

	rows, err := r.db.Query(query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("error al obtener reservas del cliente: %w", err)
	}
	defer rows.Close()

	return escanearReservas(rows)
}

// UpdateExpiredReservations pasa a Completada las reservas confirmadas
// cuya fecha de salida ya pasó
func (r *reservaRepository) UpdateExpiredReservations() error {
	query := `
		UPDATE reservation
		SET status = 'Completada'
		WHERE status = 'Confirmada'
		AND check_out_date < CURRENT_DATE
	`

	result, err := r.db.Exec(query)
	if err != nil {
		return fmt.Errorf("error al actualizar reservas expiradas: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected > 0 {
		log.Printf("Reservas actualizadas a Completada: %d", rowsAffected)
	}

	return nil
}

func (r *reservaRepository) getServiciosReserva(reservaID int) ([]domain.LineaServicio, error) {
	query := `
		SELECT service_id, name, quantity, unit_price
		FROM reservation_service
		WHERE reservation_id = $1
		ORDER BY service_id
	`

	rows, err := r.db.Query(query, reservaID)
	if err != nil {
		return nil, fmt.Errorf("error al obtener servicios de la reserva: %w", err)
	}
	defer rows.Close()

	var lineas []domain.LineaServicio
	for rows.Next() {
		var linea domain.LineaServicio
		if err := rows.Scan(&linea.ServicioID, &linea.Nombre, &linea.Cantidad, &linea.PrecioUnitario); err != nil {
			return nil, fmt.Errorf("error al escanear servicio: %w", err)
		}
		lineas = append(lineas, linea)
	}

	return lineas, rows.Err()
}

func escanearReservas(rows *sql.Rows) ([]domain.Reserva, error) {
	var reservas []domain.Reserva
	for rows.Next() {
		var reserva domain.Reserva
		err := rows.Scan(
			&reserva.ID,
			&reserva.Codigo,
			&reserva.ClienteID,
			&reserva.HabitacionID,
			&reserva.FechaEntrada,
			&reserva.FechaSalida,
			&reserva.CantidadHuespedes,
			&reserva.Estado,
			&reserva.Subtotal,
			&reserva.Impuesto,
			&reserva.Total,
			&reserva.FechaCreacion,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear reserva: %w", err)
		}
		reservas = append(reservas, reserva)
	}

	return reservas, rows.Err()
}

// traducirErrorPg mapea las violaciones de integridad de Postgres al
// conflicto de dominio. La tabla reservation lleva una restricción de
// exclusión sobre (room_id, daterange) para filas Pendiente/Confirmada,
// de modo que incluso sin la re-verificación un escritor en carrera
// pierde aquí.
func traducirErrorPg(err error, reserva *domain.Reserva) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		// 23505 unique_violation, 23P01 exclusion_violation
		if pgErr.Code == "23505" || pgErr.Code == "23P01" {
			return &domain.ErrorConflicto{
				HabitacionID: reserva.HabitacionID,
				FechaEntrada: reserva.FechaEntrada,
				FechaSalida:  reserva.FechaSalida,
			}
		}
	}
	return fmt.Errorf("error al crear reserva: %w", err)
}
