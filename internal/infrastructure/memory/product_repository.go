// Package memory provee implementaciones en memoria de los puertos de
// persistencia. Se usan en tests y en entornos sin PostgreSQL; replican la
// semántica de los adaptadores reales (duplicado, no encontrado, snapshot).
package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo registro de productos en memoria.
type ProductRepo struct {
	mu       sync.RWMutex
	products map[string]entity.Product
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{products: make(map[string]entity.Product)}
}

// Create registra un producto. ID duplicado → domain.ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.products[product.ID]; exists {
		return domain.ErrDuplicate
	}
	r.products[product.ID] = *product
	return nil
}

// GetByID devuelve una copia del producto, o nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// Update sobreescribe el producto si existe.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.products[product.ID]; !exists {
		return nil
	}
	r.products[product.ID] = *product
	return nil
}

// List devuelve todos los productos ordenados por ID.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Product, 0, len(r.products))
	for id := range r.products {
		p := r.products[id]
		list = append(list, &p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Count cuenta los productos registrados.
func (r *ProductRepo) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}
