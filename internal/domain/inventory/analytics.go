package inventory

import (
	"sort"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// DayCount cantidad de movimientos registrados en un día calendario (UTC).
type DayCount struct {
	Date  time.Time // medianoche UTC del día
	Count int
}

// DailyTrend cuenta movimientos por día calendario UTC para la ventana de 7 días
// que termina en la fecha de now, inclusive ([hoy-6 .. hoy]). Devuelve siempre
// 7 entradas en orden ascendente; los días sin movimientos aparecen con cero.
func DailyTrend(movements []*entity.Movement, now time.Time) []DayCount {
	today := now.UTC().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -6)

	trend := make([]DayCount, 7)
	for i := range trend {
		trend[i] = DayCount{Date: start.AddDate(0, 0, i)}
	}

	for _, m := range movements {
		day := m.Timestamp.UTC().Truncate(24 * time.Hour)
		if day.Before(start) || day.After(today) {
			continue
		}
		idx := int(day.Sub(start).Hours() / 24)
		trend[idx].Count++
	}
	return trend
}

// ProductVolume volumen total movido de un producto (suma de |Qty|, ignora dirección).
type ProductVolume struct {
	ProductID string
	Volume    int64
}

// TopProductsByVolume agrupa por producto sumando el valor absoluto de Qty y
// devuelve como máximo limit productos en orden descendente por volumen.
// Empates: conserva el orden de primera aparición en el snapshot (sort estable).
func TopProductsByVolume(movements []*entity.Movement, limit int) []ProductVolume {
	totals := make(map[string]int64)
	var order []string
	for _, m := range movements {
		qty := m.Qty
		if qty < 0 {
			qty = -qty
		}
		if _, seen := totals[m.ProductID]; !seen {
			order = append(order, m.ProductID)
		}
		totals[m.ProductID] += qty
	}

	ranked := make([]ProductVolume, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, ProductVolume{ProductID: id, Volume: totals[id]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Volume > ranked[j].Volume
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// RecentMovements devuelve como máximo limit movimientos ordenados por timestamp
// descendente. No muta el slice de entrada.
func RecentMovements(movements []*entity.Movement, limit int) []*entity.Movement {
	recent := make([]*entity.Movement, len(movements))
	copy(recent, movements)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Timestamp.After(recent[j].Timestamp)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}
