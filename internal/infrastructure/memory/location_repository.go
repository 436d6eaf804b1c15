package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo registro de ubicaciones en memoria.
type LocationRepo struct {
	mu        sync.RWMutex
	locations map[string]entity.Location
}

// NewLocationRepository construye el repositorio vacío.
func NewLocationRepository() *LocationRepo {
	return &LocationRepo{locations: make(map[string]entity.Location)}
}

// Create registra una ubicación. ID duplicado → domain.ErrDuplicate.
func (r *LocationRepo) Create(location *entity.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.locations[location.ID]; exists {
		return domain.ErrDuplicate
	}
	r.locations[location.ID] = *location
	return nil
}

// GetByID devuelve una copia de la ubicación, o nil si no existe.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.locations[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

// Update sobreescribe la ubicación si existe.
func (r *LocationRepo) Update(location *entity.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.locations[location.ID]; !exists {
		return nil
	}
	r.locations[location.ID] = *location
	return nil
}

// List devuelve todas las ubicaciones ordenadas por ID.
func (r *LocationRepo) List() ([]*entity.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Location, 0, len(r.locations))
	for id := range r.locations {
		l := r.locations[id]
		list = append(list, &l)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Count cuenta las ubicaciones registradas.
func (r *LocationRepo) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.locations), nil
}

// Delete elimina una ubicación por ID.
func (r *LocationRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.locations, id)
	return nil
}
