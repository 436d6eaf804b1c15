package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
//
// La PK de movements da la garantía de unicidad que exige el ledger: dos escritores
// concurrentes con el mismo ID no pueden tener éxito ambos. List es una sola consulta,
// así que el lector recibe un snapshot consistente sin ver escrituras parciales.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create agrega un movimiento al ledger. ID duplicado → domain.ErrDuplicate.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (movement_id, ts, product_id, from_location, to_location, qty, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Timestamp, movement.ProductID,
		nullable(movement.FromLocation), nullable(movement.ToLocation),
		movement.Qty, movement.CreatedAt, movement.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil sin error si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `
		SELECT movement_id, ts, product_id, from_location, to_location, qty, created_at, updated_at
		FROM movements WHERE movement_id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// Replace sustituye el registro completo de un movimiento existente.
// ID inexistente → domain.ErrNotFound, sin cambios en el ledger.
func (r *MovementRepo) Replace(movement *entity.Movement) error {
	query := `
		UPDATE movements
		SET ts = $2, product_id = $3, from_location = $4, to_location = $5, qty = $6, updated_at = $7
		WHERE movement_id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Timestamp, movement.ProductID,
		nullable(movement.FromLocation), nullable(movement.ToLocation),
		movement.Qty, movement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("replace movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve el snapshot del ledger ordenado por timestamp descendente,
// acotado por [from, to] cuando los punteros no son nil. Una sola consulta.
func (r *MovementRepo) List(from, to *time.Time) ([]*entity.Movement, error) {
	query := `
		SELECT movement_id, ts, product_id, from_location, to_location, qty, created_at, updated_at
		FROM movements`
	var args []any
	pos := 1
	clause := " WHERE"
	if from != nil {
		query += fmt.Sprintf("%s ts >= $%d", clause, pos)
		args = append(args, *from)
		clause = " AND"
		pos++
	}
	if to != nil {
		query += fmt.Sprintf("%s ts <= $%d", clause, pos)
		args = append(args, *to)
	}
	query += " ORDER BY ts DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Count cuenta los movimientos del ledger.
func (r *MovementRepo) Count() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM movements`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}

// CountByProduct cuenta los movimientos que referencian un producto.
func (r *MovementRepo) CountByProduct(productID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM movements WHERE product_id = $1`, productID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movements by product: %w", err)
	}
	return n, nil
}

// CountByLocation cuenta los movimientos que referencian una ubicación como origen o destino.
func (r *MovementRepo) CountByLocation(locationID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM movements WHERE from_location = $1 OR to_location = $1`, locationID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movements by location: %w", err)
	}
	return n, nil
}

// nullable convierte "" a NULL para las columnas de ubicación opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// scanMovement escanea una fila de movements mapeando NULL → "".
func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var from, to *string
	err := row.Scan(&m.ID, &m.Timestamp, &m.ProductID, &from, &to, &m.Qty, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if from != nil {
		m.FromLocation = *from
	}
	if to != nil {
		m.ToLocation = *to
	}
	return &m, nil
}
