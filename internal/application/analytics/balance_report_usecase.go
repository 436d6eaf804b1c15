package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain/inventory"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// BalanceReportUseCase deriva el reporte de saldos por (producto, ubicación)
// replayando el snapshot completo del ledger. Los saldos no se almacenan: son
// una vista, así que no hay estado materializado que invalidar; la cache
// versionada solo ahorra el replay entre mutaciones.
type BalanceReportUseCase struct {
	ledger       repository.MovementRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	cache        *Cache
}

// NewBalanceReportUseCase construye el caso de uso. cache puede ser nil.
func NewBalanceReportUseCase(
	ledger repository.MovementRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	cache *Cache,
) *BalanceReportUseCase {
	return &BalanceReportUseCase{
		ledger:       ledger,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		cache:        cache,
	}
}

// GetReport calcula los saldos netos y resuelve nombres para la vista tabular.
// Solo incluye saldos distintos de cero, ordenados por producto y ubicación.
// Nombres no registrados caen al ID crudo, igual que el ranking del dashboard.
func (uc *BalanceReportUseCase) GetReport(ctx context.Context) (*dto.BalanceReportDTO, error) {
	key, err := uc.cache.BuildKey(ctx, "balance", "report")
	if err != nil {
		return nil, err
	}
	var out dto.BalanceReportDTO
	err = uc.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (any, error) {
		movements, err := uc.ledger.List(nil, nil)
		if err != nil {
			return nil, err
		}
		balances := inventory.ComputeBalances(movements)

		productNames, err := uc.productNames()
		if err != nil {
			return nil, err
		}
		locationNames, err := uc.locationNames()
		if err != nil {
			return nil, err
		}

		result := dto.BalanceReportDTO{Items: make([]dto.BalanceRowDTO, 0, len(balances))}
		for bk, qty := range balances {
			productName, ok := productNames[bk.ProductID]
			if !ok {
				productName = bk.ProductID
			}
			locationName, ok := locationNames[bk.LocationID]
			if !ok {
				locationName = bk.LocationID
			}
			result.Items = append(result.Items, dto.BalanceRowDTO{
				ProductID:    bk.ProductID,
				ProductName:  productName,
				LocationID:   bk.LocationID,
				LocationName: locationName,
				Qty:          qty,
			})
		}
		sort.Slice(result.Items, func(i, j int) bool {
			if result.Items[i].ProductID != result.Items[j].ProductID {
				return result.Items[i].ProductID < result.Items[j].ProductID
			}
			return result.Items[i].LocationID < result.Items[j].LocationID
		})
		return result, nil
	})
	if err != nil {
		return nil, fmt.Errorf("reporte de balance: %w", err)
	}
	return &out, nil
}

func (uc *BalanceReportUseCase) productNames() (map[string]string, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names, nil
}

func (uc *BalanceReportUseCase) locationNames() (map[string]string, error) {
	locations, err := uc.locationRepo.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(locations))
	for _, l := range locations {
		names[l.ID] = l.Name
	}
	return names, nil
}
