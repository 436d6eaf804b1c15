package repository

import (
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para el ledger de movimientos.
//
// List devuelve un snapshot consistente del ledger (una sola consulta) ordenado por
// timestamp descendente; from/to acotan el rango de fechas cuando no son nil.
// Los agregadores de balance y analítica operan siempre sobre ese snapshot.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	Replace(movement *entity.Movement) error
	List(from, to *time.Time) ([]*entity.Movement, error)
	Count() (int, error)
	CountByProduct(productID string) (int, error)
	CountByLocation(locationID string) (int, error)
}
