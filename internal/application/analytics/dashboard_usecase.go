// Package analytics contiene los casos de uso de solo lectura derivados del
// ledger: métricas del dashboard, tendencia diaria, top de productos, actividad
// reciente y el reporte de balances. Todos son funciones puras de un snapshot
// del ledger; la cache versionada solo evita recomputarlas entre mutaciones.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain/inventory"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

const (
	trendDays   = 7  // ventana de la tendencia diaria, hoy inclusive
	topProducts = 5  // posiciones del ranking por volumen
	recentLimit = 10 // movimientos en la vista de actividad reciente
)

// DashboardUseCase sirve los endpoints de analítica del dashboard.
type DashboardUseCase struct {
	ledger       repository.MovementRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	cache        *Cache
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil (sin Redis).
func NewDashboardUseCase(
	ledger repository.MovementRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	cache *Cache,
) *DashboardUseCase {
	return &DashboardUseCase{
		ledger:       ledger,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		cache:        cache,
	}
}

// GetMetrics devuelve los conteos de productos, ubicaciones y movimientos.
// Tres consultas en paralelo; no pasa por la cache porque los conteos de
// registro cambian sin que el ledger mute.
func (uc *DashboardUseCase) GetMetrics(ctx context.Context) (*dto.MetricsDTO, error) {
	type countResult struct {
		n   int
		err error
	}
	productsCh := make(chan countResult, 1)
	locationsCh := make(chan countResult, 1)
	movementsCh := make(chan countResult, 1)

	go func() {
		n, err := uc.productRepo.Count()
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.locationRepo.Count()
		locationsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.ledger.Count()
		movementsCh <- countResult{n, err}
	}()

	products := <-productsCh
	locations := <-locationsCh
	movements := <-movementsCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de productos: %w", products.err)
	}
	if locations.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de ubicaciones: %w", locations.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de movimientos: %w", movements.err)
	}

	return &dto.MetricsDTO{
		Products:  products.n,
		Locations: locations.n,
		Movements: movements.n,
	}, nil
}

// GetTrend devuelve la serie de movimientos por día de los últimos 7 días (UTC),
// con ceros en los días sin actividad.
func (uc *DashboardUseCase) GetTrend(ctx context.Context) (*dto.TrendDTO, error) {
	key, err := uc.cache.BuildKey(ctx, "dashboard", "trend")
	if err != nil {
		return nil, err
	}
	var out dto.TrendDTO
	err = uc.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (any, error) {
		now := time.Now().UTC()
		start := now.Truncate(24 * time.Hour).AddDate(0, 0, -(trendDays - 1))
		movements, err := uc.ledger.List(&start, nil)
		if err != nil {
			return nil, err
		}
		trend := inventory.DailyTrend(movements, now)
		result := dto.TrendDTO{
			Labels: make([]string, 0, len(trend)),
			Data:   make([]int, 0, len(trend)),
		}
		for _, dc := range trend {
			result.Labels = append(result.Labels, dc.Date.Format("2006-01-02"))
			result.Data = append(result.Data, dc.Count)
		}
		return result, nil
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard: tendencia diaria: %w", err)
	}
	return &out, nil
}

// GetTopProducts devuelve los 5 productos con mayor volumen movido (suma de |qty|),
// con el nombre resuelto desde el registro o el ID crudo si no existe la entrada.
func (uc *DashboardUseCase) GetTopProducts(ctx context.Context) (*dto.TopProductsDTO, error) {
	key, err := uc.cache.BuildKey(ctx, "dashboard", "top_products")
	if err != nil {
		return nil, err
	}
	var out dto.TopProductsDTO
	err = uc.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (any, error) {
		movements, err := uc.ledger.List(nil, nil)
		if err != nil {
			return nil, err
		}
		names, err := uc.productNames()
		if err != nil {
			return nil, err
		}
		ranked := inventory.TopProductsByVolume(movements, topProducts)
		result := dto.TopProductsDTO{
			Labels: make([]string, 0, len(ranked)),
			Data:   make([]int64, 0, len(ranked)),
		}
		for _, pv := range ranked {
			name, ok := names[pv.ProductID]
			if !ok {
				name = pv.ProductID
			}
			result.Labels = append(result.Labels, name)
			result.Data = append(result.Data, pv.Volume)
		}
		return result, nil
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", err)
	}
	return &out, nil
}

// GetRecent devuelve los últimos 10 movimientos con timestamps ISO-8601 en UTC.
func (uc *DashboardUseCase) GetRecent(ctx context.Context) (*dto.RecentMovementsDTO, error) {
	key, err := uc.cache.BuildKey(ctx, "dashboard", "recent")
	if err != nil {
		return nil, err
	}
	var out dto.RecentMovementsDTO
	err = uc.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (any, error) {
		movements, err := uc.ledger.List(nil, nil)
		if err != nil {
			return nil, err
		}
		recent := inventory.RecentMovements(movements, recentLimit)
		result := dto.RecentMovementsDTO{Items: make([]dto.RecentMovementDTO, 0, len(recent))}
		for _, m := range recent {
			result.Items = append(result.Items, dto.RecentMovementDTO{
				MovementID:   m.ID,
				Timestamp:    m.Timestamp.UTC().Format(time.RFC3339),
				ProductID:    m.ProductID,
				FromLocation: optionalLocation(m.FromLocation),
				ToLocation:   optionalLocation(m.ToLocation),
				Qty:          m.Qty,
			})
		}
		return result, nil
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard: movimientos recientes: %w", err)
	}
	return &out, nil
}

// optionalLocation convierte el extremo vacío (externo) a nil para que el JSON
// lo emita como null.
func optionalLocation(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

// productNames mapa ID → nombre para resolver etiquetas.
func (uc *DashboardUseCase) productNames() (map[string]string, error) {
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
