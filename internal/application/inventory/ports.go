package inventory

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de la base de datos, con los
// repositorios atados a la misma tx. Así la validación referencial y la escritura
// del movimiento son atómicas: o se valida y escribe todo, o no se escribe nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
	) error) error
}

// CacheInvalidator invalida las proyecciones cacheadas cuando el ledger muta.
// Las implementaciones deben tolerar receptor nil (cache deshabilitada).
type CacheInvalidator interface {
	Bump(ctx context.Context) error
}
