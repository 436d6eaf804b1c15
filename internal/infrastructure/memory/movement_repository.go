package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo ledger de movimientos en memoria. List devuelve copias, así que
// cada llamada es un snapshot independiente como en el adaptador PostgreSQL.
type MovementRepo struct {
	mu        sync.RWMutex
	movements map[string]entity.Movement
}

// NewMovementRepository construye el ledger vacío.
func NewMovementRepository() *MovementRepo {
	return &MovementRepo{movements: make(map[string]entity.Movement)}
}

// Create agrega un movimiento. ID duplicado → domain.ErrDuplicate.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.movements[movement.ID]; exists {
		return domain.ErrDuplicate
	}
	r.movements[movement.ID] = *movement
	return nil
}

// GetByID devuelve una copia del movimiento, o nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.movements[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// Replace sustituye el registro completo. ID inexistente → domain.ErrNotFound.
func (r *MovementRepo) Replace(movement *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.movements[movement.ID]; !exists {
		return domain.ErrNotFound
	}
	r.movements[movement.ID] = *movement
	return nil
}

// List devuelve el snapshot ordenado por timestamp descendente, acotado por
// [from, to] cuando los punteros no son nil.
func (r *MovementRepo) List(from, to *time.Time) ([]*entity.Movement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Movement, 0, len(r.movements))
	for id := range r.movements {
		m := r.movements[id]
		if from != nil && m.Timestamp.Before(*from) {
			continue
		}
		if to != nil && m.Timestamp.After(*to) {
			continue
		}
		list = append(list, &m)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Timestamp.After(list[j].Timestamp) })
	return list, nil
}

// Count cuenta los movimientos del ledger.
func (r *MovementRepo) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.movements), nil
}

// CountByProduct cuenta los movimientos que referencian un producto.
func (r *MovementRepo) CountByProduct(productID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, m := range r.movements {
		if m.ProductID == productID {
			n++
		}
	}
	return n, nil
}

// CountByLocation cuenta los movimientos que referencian una ubicación.
func (r *MovementRepo) CountByLocation(locationID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, m := range r.movements {
		if m.FromLocation == locationID || m.ToLocation == locationID {
			n++
		}
	}
	return n, nil
}
