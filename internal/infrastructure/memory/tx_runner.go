package memory

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/application/inventory"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner versión en memoria del runner transaccional: ejecuta fn directamente
// sobre los repositorios. No hay rollback real; los casos de uso validan antes
// de escribir, así que una falla de validación no deja efectos parciales.
type TxRunner struct {
	movements *MovementRepo
	products  *ProductRepo
	locations *LocationRepo
}

// NewTxRunner construye el runner sobre los repositorios dados.
func NewTxRunner(movements *MovementRepo, products *ProductRepo, locations *LocationRepo) *TxRunner {
	return &TxRunner{movements: movements, products: products, locations: locations}
}

// Run ejecuta fn con los repositorios en memoria.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) error) error {
	return fn(r.movements, r.products, r.locations)
}
