// Package inventory contiene los servicios de dominio puros del ledger:
// cálculo de balances por (producto, ubicación) y las proyecciones de analítica.
// Ninguna función de este paquete toca persistencia; operan sobre un snapshot
// de movimientos que les pasa la capa de aplicación.
package inventory

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// BalanceKey identifica un saldo: un producto en una ubicación.
type BalanceKey struct {
	ProductID  string
	LocationID string
}

// ComputeBalances deriva el saldo neto por (producto, ubicación) replayando el ledger.
// Por cada movimiento: +Qty en el destino y -Qty en el origen (si están presentes).
// La acumulación es conmutativa, así que el resultado no depende del orden del snapshot.
// Las entradas con saldo exactamente cero se omiten del resultado.
func ComputeBalances(movements []*entity.Movement) map[BalanceKey]int64 {
	acc := make(map[BalanceKey]int64)
	for _, m := range movements {
		if m.ToLocation != "" {
			acc[BalanceKey{ProductID: m.ProductID, LocationID: m.ToLocation}] += m.Qty
		}
		if m.FromLocation != "" {
			acc[BalanceKey{ProductID: m.ProductID, LocationID: m.FromLocation}] -= m.Qty
		}
	}
	for k, v := range acc {
		if v == 0 {
			delete(acc, k)
		}
	}
	return acc
}
