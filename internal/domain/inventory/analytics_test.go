package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/inventory"
)

// TestDailyTrendWindow la ventana cubre exactamente [hoy-6, hoy] en orden ascendente,
// con ceros en los días sin movimientos.
func TestDailyTrendWindow(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)
	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	movements := []*entity.Movement{
		mov("M1", "", "WH001", "P1", 5, today.Add(3*time.Hour)),              // hoy
		mov("M2", "", "WH001", "P1", 5, today.AddDate(0, 0, -2)),             // hace 2 días
		mov("M3", "WH001", "STORE1", "P1", 2, today.AddDate(0, 0, -2).Add(23*time.Hour)),
		mov("M4", "", "WH001", "P2", 9, today.AddDate(0, 0, -8)),             // fuera de la ventana
		mov("M5", "", "WH001", "P2", 1, today.AddDate(0, 0, -6)),             // primer día de la ventana
	}

	trend := inventory.DailyTrend(movements, now)

	require.Len(t, trend, 7)
	for i, dc := range trend {
		assert.Equal(t, today.AddDate(0, 0, i-6), dc.Date, "fecha en posición %d", i)
	}
	assert.Equal(t, []int{1, 0, 0, 0, 2, 0, 1}, counts(trend))
}

// TestDailyTrendEmptyLedger un ledger vacío produce 7 días en cero, no un error.
func TestDailyTrendEmptyLedger(t *testing.T) {
	trend := inventory.DailyTrend(nil, time.Now())

	require.Len(t, trend, 7)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0}, counts(trend))
	for i := 1; i < len(trend); i++ {
		assert.True(t, trend[i].Date.After(trend[i-1].Date), "fechas ascendentes")
	}
}

// TestDailyTrendUTCBoundary los días se cortan por calendario UTC, no por la zona local.
func TestDailyTrendUTCBoundary(t *testing.T) {
	bogota := time.FixedZone("America/Bogota", -5*3600)
	// 23:30 del 30 en Bogotá = 04:30 del 31 en UTC → cuenta para el 31.
	ts := time.Date(2026, 8, 30, 23, 30, 0, 0, bogota)
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	trend := inventory.DailyTrend([]*entity.Movement{mov("M1", "", "WH001", "P1", 1, ts)}, now)

	require.Len(t, trend, 7)
	assert.Equal(t, 1, trend[6].Count)
	assert.Equal(t, 0, trend[5].Count)
}

func counts(trend []inventory.DayCount) []int {
	out := make([]int, len(trend))
	for i, dc := range trend {
		out[i] = dc.Count
	}
	return out
}

// TestTopProductsByVolume suma |Qty| por producto (volumen movido, no saldo neto),
// ordena descendente y trunca.
func TestTopProductsByVolume(t *testing.T) {
	now := time.Now().UTC()
	movements := []*entity.Movement{
		mov("M1", "", "WH001", "P1", 50, now),
		mov("M2", "WH001", "", "P1", 30, now), // salida también suma volumen
		mov("M3", "", "WH001", "P2", 60, now),
		mov("M4", "", "WH001", "P3", 10, now),
	}

	top := inventory.TopProductsByVolume(movements, 5)

	require.Len(t, top, 3)
	assert.Equal(t, inventory.ProductVolume{ProductID: "P1", Volume: 80}, top[0])
	assert.Equal(t, inventory.ProductVolume{ProductID: "P2", Volume: 60}, top[1])
	assert.Equal(t, inventory.ProductVolume{ProductID: "P3", Volume: 10}, top[2])
}

// TestTopProductsByVolumeTieBreak en empate gana el producto que aparece primero
// en el snapshot (orden estable de primera aparición).
func TestTopProductsByVolumeTieBreak(t *testing.T) {
	now := time.Now().UTC()
	movements := []*entity.Movement{
		mov("M1", "", "WH001", "PB", 40, now),
		mov("M2", "", "WH001", "PA", 40, now),
	}

	top := inventory.TopProductsByVolume(movements, 5)

	require.Len(t, top, 2)
	assert.Equal(t, "PB", top[0].ProductID)
	assert.Equal(t, "PA", top[1].ProductID)
}

// TestTopProductsByVolumeTruncates nunca más de limit entradas; ledger vacío → vacío.
func TestTopProductsByVolumeTruncates(t *testing.T) {
	now := time.Now().UTC()
	var movements []*entity.Movement
	for _, id := range []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7"} {
		movements = append(movements, mov("M-"+id, "", "WH001", id, 1, now))
	}

	assert.Len(t, inventory.TopProductsByVolume(movements, 5), 5)
	assert.Empty(t, inventory.TopProductsByVolume(nil, 5))
}

// TestRecentMovements orden descendente por timestamp, truncado a limit,
// sin mutar el snapshot de entrada.
func TestRecentMovements(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	var movements []*entity.Movement
	for i := 0; i < 12; i++ {
		movements = append(movements, mov("M"+string(rune('A'+i)), "", "WH001", "P1", 1, base.Add(time.Duration(i)*time.Hour)))
	}
	first := movements[0]

	recent := inventory.RecentMovements(movements, 10)

	require.Len(t, recent, 10)
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].Timestamp.After(recent[i-1].Timestamp), "timestamps descendentes")
	}
	assert.Equal(t, "ML", recent[0].ID)
	assert.Same(t, first, movements[0], "el slice original no se reordena")
}

// TestRecentMovementsEmpty ledger vacío → lista vacía.
func TestRecentMovementsEmpty(t *testing.T) {
	assert.Empty(t, inventory.RecentMovements(nil, 10))
}
