package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	appinventory "github.com/jhoicas/stockflow-api/internal/application/inventory"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
)

type fixture struct {
	uc        *appinventory.LedgerUseCase
	movements *memory.MovementRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	movements := memory.NewMovementRepository()
	products := memory.NewProductRepository()
	locations := memory.NewLocationRepository()

	require.NoError(t, products.Create(&entity.Product{ID: "PROD001", Name: "Laptop"}))
	require.NoError(t, products.Create(&entity.Product{ID: "PROD002", Name: "Mouse"}))
	require.NoError(t, locations.Create(&entity.Location{ID: "WH001", Name: "Bodega principal"}))
	require.NoError(t, locations.Create(&entity.Location{ID: "STORE001", Name: "Tienda A"}))

	txRunner := memory.NewTxRunner(movements, products, locations)
	return &fixture{
		uc:        appinventory.NewLedgerUseCase(txRunner, movements, nil),
		movements: movements,
	}
}

func TestRecordInbound(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Record(context.Background(), dto.MovementRequest{
		MovementID: "MOV001",
		ProductID:  "PROD001",
		ToLocation: "WH001",
		Qty:        50,
	})
	require.NoError(t, err)
	assert.Equal(t, "MOV001", out.MovementID)
	assert.Equal(t, entity.MovementKindInbound, out.Kind)
	assert.Empty(t, out.FromLocation)

	stored, err := f.movements.GetByID("MOV001")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, int64(50), stored.Qty)
}

func TestRecordGeneratesIDAndTimestamp(t *testing.T) {
	f := newFixture(t)

	before := time.Now().UTC()
	out, err := f.uc.Record(context.Background(), dto.MovementRequest{
		ProductID:    "PROD001",
		FromLocation: "WH001",
		Qty:          3,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.MovementID)
	assert.Equal(t, entity.MovementKindOutbound, out.Kind)
	assert.False(t, out.Timestamp.Before(before))
}

func TestRecordValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.MovementRequest
	}{
		{"qty cero", dto.MovementRequest{ProductID: "PROD001", ToLocation: "WH001", Qty: 0}},
		{"qty negativa", dto.MovementRequest{ProductID: "PROD001", ToLocation: "WH001", Qty: -5}},
		{"sin extremos", dto.MovementRequest{ProductID: "PROD001", Qty: 10}},
		{"sin producto", dto.MovementRequest{ToLocation: "WH001", Qty: 10}},
		{"producto inexistente", dto.MovementRequest{ProductID: "NOPE", ToLocation: "WH001", Qty: 10}},
		{"ubicación inexistente", dto.MovementRequest{ProductID: "PROD001", ToLocation: "NOPE", Qty: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Record(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	// Ninguna falla debe dejar rastro en el ledger
	n, err := f.movements.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRecordDuplicateID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := dto.MovementRequest{MovementID: "MOV001", ProductID: "PROD001", ToLocation: "WH001", Qty: 5}
	_, err := f.uc.Record(ctx, in)
	require.NoError(t, err)

	_, err = f.uc.Record(ctx, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	n, err := f.movements.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecordSelfTransferAccepted(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Record(context.Background(), dto.MovementRequest{
		MovementID:   "MOV001",
		ProductID:    "PROD001",
		FromLocation: "WH001",
		ToLocation:   "WH001",
		Qty:          4,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementKindTransfer, out.Kind)
}

func TestReplace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Record(ctx, dto.MovementRequest{
		MovementID: "MOV001", ProductID: "PROD001", ToLocation: "WH001", Qty: 5,
	})
	require.NoError(t, err)
	prior, err := f.movements.GetByID("MOV001")
	require.NoError(t, err)

	out, err := f.uc.Replace(ctx, "MOV001", dto.MovementRequest{
		ProductID:    "PROD002",
		FromLocation: "WH001",
		ToLocation:   "STORE001",
		Qty:          9,
	})
	require.NoError(t, err)
	assert.Equal(t, "MOV001", out.MovementID)
	assert.Equal(t, "PROD002", out.ProductID)
	assert.Equal(t, int64(9), out.Qty)

	stored, err := f.movements.GetByID("MOV001")
	require.NoError(t, err)
	require.NotNil(t, stored)
	// La edición conserva la fecha de creación original
	assert.Equal(t, prior.CreatedAt, stored.CreatedAt)
	assert.Equal(t, "PROD002", stored.ProductID)
}

func TestReplaceNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Replace(context.Background(), "GHOST", dto.MovementRequest{
		ProductID: "PROD001", ToLocation: "WH001", Qty: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	n, err := f.movements.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReplaceValidationLeavesLedgerIntact(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Record(ctx, dto.MovementRequest{
		MovementID: "MOV001", ProductID: "PROD001", ToLocation: "WH001", Qty: 5,
	})
	require.NoError(t, err)

	_, err = f.uc.Replace(ctx, "MOV001", dto.MovementRequest{
		ProductID: "PROD001", ToLocation: "WH001", Qty: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stored, err := f.movements.GetByID("MOV001")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, int64(5), stored.Qty)
}

func TestListOrderAndFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"MOV001", "MOV002", "MOV003"} {
		ts := base.Add(time.Duration(i) * 24 * time.Hour)
		_, err := f.uc.Record(ctx, dto.MovementRequest{
			MovementID: id, Timestamp: &ts, ProductID: "PROD001", ToLocation: "WH001", Qty: 1,
		})
		require.NoError(t, err)
	}

	out, err := f.uc.List(nil, nil)
	require.NoError(t, err)
	require.Equal(t, 3, out.Total)
	assert.Equal(t, "MOV003", out.Items[0].MovementID)
	assert.Equal(t, "MOV001", out.Items[2].MovementID)

	from := base.Add(12 * time.Hour)
	filtered, err := f.uc.List(&from, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, filtered.Total)
}

func TestGetByIDMissing(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.GetByID("GHOST")
	require.NoError(t, err)
	assert.Nil(t, out)
}
