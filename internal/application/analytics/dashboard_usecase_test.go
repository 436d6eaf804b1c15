package analytics_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/analytics"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
)

type dashFixture struct {
	uc        *analytics.DashboardUseCase
	cache     *analytics.Cache
	movements *memory.MovementRepo
	products  *memory.ProductRepo
	locations *memory.LocationRepo
}

func newDashFixture(t *testing.T, withRedis bool) *dashFixture {
	t.Helper()
	movements := memory.NewMovementRepository()
	products := memory.NewProductRepository()
	locations := memory.NewLocationRepository()

	var cache *analytics.Cache
	if withRedis {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		cache = analytics.NewCache(client, 5*time.Minute)
	}

	return &dashFixture{
		uc:        analytics.NewDashboardUseCase(movements, products, locations, cache),
		cache:     cache,
		movements: movements,
		products:  products,
		locations: locations,
	}
}

func seedMovement(t *testing.T, f *dashFixture, id, from, to, productID string, qty int64, ts time.Time) {
	t.Helper()
	require.NoError(t, f.movements.Create(&entity.Movement{
		ID:           id,
		Timestamp:    ts,
		ProductID:    productID,
		FromLocation: from,
		ToLocation:   to,
		Qty:          qty,
	}))
}

func TestGetMetrics(t *testing.T) {
	f := newDashFixture(t, false)

	require.NoError(t, f.products.Create(&entity.Product{ID: "PROD001", Name: "Laptop"}))
	require.NoError(t, f.products.Create(&entity.Product{ID: "PROD002", Name: "Mouse"}))
	require.NoError(t, f.locations.Create(&entity.Location{ID: "WH001", Name: "Bodega"}))
	seedMovement(t, f, "MOV001", "", "WH001", "PROD001", 10, time.Now().UTC())

	out, err := f.uc.GetMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, out.Products)
	assert.Equal(t, 1, out.Locations)
	assert.Equal(t, 1, out.Movements)
}

func TestGetTrendWithoutCache(t *testing.T) {
	f := newDashFixture(t, false)

	now := time.Now().UTC()
	seedMovement(t, f, "MOV001", "", "WH001", "PROD001", 5, now)
	seedMovement(t, f, "MOV002", "WH001", "", "PROD001", 2, now)
	seedMovement(t, f, "MOV003", "", "WH001", "PROD001", 3, now.Add(-2*24*time.Hour))
	// Fuera de la ventana de 7 días, no debe contar
	seedMovement(t, f, "MOV004", "", "WH001", "PROD001", 1, now.Add(-10*24*time.Hour))

	out, err := f.uc.GetTrend(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Labels, 7)
	require.Len(t, out.Data, 7)
	assert.Equal(t, 2, out.Data[6])
	assert.Equal(t, 1, out.Data[4])
	assert.Equal(t, now.Truncate(24*time.Hour).Format("2006-01-02"), out.Labels[6])

	total := 0
	for _, n := range out.Data {
		total += n
	}
	assert.Equal(t, 3, total)
}

func TestGetTopProductsNameFallback(t *testing.T) {
	f := newDashFixture(t, false)

	require.NoError(t, f.products.Create(&entity.Product{ID: "PROD001", Name: "Laptop"}))
	now := time.Now().UTC()
	seedMovement(t, f, "MOV001", "", "WH001", "PROD001", 50, now)
	seedMovement(t, f, "MOV002", "WH001", "", "PROD001", 10, now)
	seedMovement(t, f, "MOV003", "", "WH001", "GHOST", 30, now)

	out, err := f.uc.GetTopProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Labels, 2)
	// Volumen = suma de |qty|, descendente; sin entrada en el registro cae al ID crudo
	assert.Equal(t, []string{"Laptop", "GHOST"}, out.Labels)
	assert.Equal(t, []int64{60, 30}, out.Data)
}

func TestGetRecentTimestampFormat(t *testing.T) {
	f := newDashFixture(t, false)

	ts := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)
	seedMovement(t, f, "MOV001", "WH001", "STORE001", "PROD001", 7, ts)

	out, err := f.uc.GetRecent(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "2026-08-30T15:04:05Z", out.Items[0].Timestamp)
	assert.Equal(t, "MOV001", out.Items[0].MovementID)
	require.NotNil(t, out.Items[0].FromLocation)
	require.NotNil(t, out.Items[0].ToLocation)
	assert.Equal(t, "WH001", *out.Items[0].FromLocation)
	assert.Equal(t, "STORE001", *out.Items[0].ToLocation)
}

// Los extremos ausentes (entrada/salida externa) se serializan como null,
// no como cadena vacía.
func TestGetRecentExternalEndpointsAsNull(t *testing.T) {
	f := newDashFixture(t, false)

	now := time.Now().UTC()
	seedMovement(t, f, "MOV001", "", "WH001", "PROD001", 10, now)
	seedMovement(t, f, "MOV002", "STORE001", "", "PROD001", 2, now.Add(time.Hour))

	out, err := f.uc.GetRecent(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	outbound, inbound := out.Items[0], out.Items[1]
	assert.Nil(t, outbound.ToLocation)
	require.NotNil(t, outbound.FromLocation)
	assert.Equal(t, "STORE001", *outbound.FromLocation)
	assert.Nil(t, inbound.FromLocation)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"to_location":null`)
	assert.Contains(t, string(raw), `"from_location":null`)
}

func TestDashboardCacheHitAndBump(t *testing.T) {
	f := newDashFixture(t, true)
	ctx := context.Background()

	require.NoError(t, f.products.Create(&entity.Product{ID: "PROD001", Name: "Laptop"}))
	now := time.Now().UTC()
	seedMovement(t, f, "MOV001", "", "WH001", "PROD001", 10, now)

	first, err := f.uc.GetTopProducts(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{10}, first.Data)

	// Nueva escritura sin Bump: la proyección cacheada sigue vigente
	seedMovement(t, f, "MOV002", "", "WH001", "PROD001", 5, now)
	cached, err := f.uc.GetTopProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, cached.Data)

	// Bump invalida la versión y la siguiente lectura recalcula
	require.NoError(t, f.cache.Bump(ctx))
	fresh, err := f.uc.GetTopProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{15}, fresh.Data)
}
