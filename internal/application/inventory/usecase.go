// Package inventory contiene el caso de uso del ledger de movimientos:
// registro y reemplazo con validación completa, y lectura del snapshot.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// LedgerUseCase registra, reemplaza y lista movimientos del ledger.
// Toda mutación valida contra el registro de productos/ubicaciones dentro de una
// transacción y, si tiene éxito, invalida la cache de analítica.
type LedgerUseCase struct {
	txRunner TxRunner
	ledger   repository.MovementRepository
	cache    CacheInvalidator
}

// NewLedgerUseCase construye el caso de uso. cache puede ser nil (sin Redis).
func NewLedgerUseCase(txRunner TxRunner, ledger repository.MovementRepository, cache CacheInvalidator) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, ledger: ledger, cache: cache}
}

// Record valida y agrega un movimiento al ledger.
//
// Reglas: qty estrictamente positiva; al menos un extremo (origen o destino);
// producto y ubicaciones referenciadas deben existir; el ID no puede repetirse.
// origen == destino se acepta (no-op para balances, igual que el sistema original).
// Sin efectos parciales: cualquier falla deja el ledger intacto.
func (uc *LedgerUseCase) Record(ctx context.Context, in dto.MovementRequest) (*dto.MovementResponse, error) {
	movement, err := buildMovement(in)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
	) error {
		if err := validateReferences(movement, productRepo, locationRepo); err != nil {
			return err
		}
		return movRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}

	uc.bump(ctx)
	return toMovementResponse(movement), nil
}

// Replace sustituye por completo un movimiento existente (edición). Aplica las
// mismas validaciones que Record; si el ID no existe devuelve ErrNotFound y el
// ledger queda sin cambios.
func (uc *LedgerUseCase) Replace(ctx context.Context, id string, in dto.MovementRequest) (*dto.MovementResponse, error) {
	in.MovementID = id
	movement, err := buildMovement(in)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
	) error {
		if err := validateReferences(movement, productRepo, locationRepo); err != nil {
			return err
		}
		prior, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if prior == nil {
			return domain.ErrNotFound
		}
		movement.CreatedAt = prior.CreatedAt
		return movRepo.Replace(movement)
	})
	if err != nil {
		return nil, err
	}

	uc.bump(ctx)
	return toMovementResponse(movement), nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil sin error si no existe.
func (uc *LedgerUseCase) GetByID(id string) (*dto.MovementResponse, error) {
	movement, err := uc.ledger.GetByID(id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, nil
	}
	return toMovementResponse(movement), nil
}

// List devuelve el snapshot del ledger ordenado por timestamp descendente,
// opcionalmente acotado por rango de fechas.
func (uc *LedgerUseCase) List(from, to *time.Time) (*dto.MovementListResponse, error) {
	movements, err := uc.ledger.List(from, to)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

// bump invalida la cache de analítica. Best effort: si Redis falla, la cache
// expira sola por TTL y el ledger ya quedó persistido.
func (uc *LedgerUseCase) bump(ctx context.Context) {
	if uc.cache != nil {
		_ = uc.cache.Bump(ctx)
	}
}

// buildMovement valida la forma del movimiento (sin tocar la base de datos).
func buildMovement(in dto.MovementRequest) (*entity.Movement, error) {
	if in.ProductID == "" {
		return nil, fmt.Errorf("%w: product_id es requerido", domain.ErrInvalidInput)
	}
	if in.Qty <= 0 {
		return nil, fmt.Errorf("%w: qty debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.FromLocation == "" && in.ToLocation == "" {
		return nil, fmt.Errorf("%w: se requiere al menos origen o destino", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	id := in.MovementID
	if id == "" {
		id = uuid.New().String()
	}
	ts := now
	if in.Timestamp != nil {
		ts = in.Timestamp.UTC()
	}
	return &entity.Movement{
		ID:           id,
		Timestamp:    ts,
		ProductID:    in.ProductID,
		FromLocation: in.FromLocation,
		ToLocation:   in.ToLocation,
		Qty:          in.Qty,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// validateReferences verifica que el producto y las ubicaciones referenciadas existan.
func validateReferences(
	m *entity.Movement,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) error {
	product, err := productRepo.GetByID(m.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: producto %s no existe", domain.ErrInvalidInput, m.ProductID)
	}
	for _, locID := range []string{m.FromLocation, m.ToLocation} {
		if locID == "" {
			continue
		}
		location, err := locationRepo.GetByID(locID)
		if err != nil {
			return err
		}
		if location == nil {
			return fmt.Errorf("%w: ubicación %s no existe", domain.ErrInvalidInput, locID)
		}
	}
	return nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		MovementID:   m.ID,
		Timestamp:    m.Timestamp,
		ProductID:    m.ProductID,
		FromLocation: m.FromLocation,
		ToLocation:   m.ToLocation,
		Qty:          m.Qty,
		Kind:         m.Kind(),
	}
}
