package dto

// ── Dashboard ─────────────────────────────────────────────────────────────────

// MetricsDTO conteos globales para las tarjetas del dashboard.
type MetricsDTO struct {
	Products  int `json:"products"`
	Locations int `json:"locations"`
	Movements int `json:"movements"`
}

// TrendDTO serie de movimientos por día para la gráfica de tendencia.
// labels son fechas YYYY-MM-DD (UTC) ascendentes; data el conteo por día.
// Siempre 7 posiciones, con ceros en días sin actividad.
type TrendDTO struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// TopProductsDTO ranking de productos por volumen movido (suma de |qty|).
// labels son nombres de producto (o el ID crudo si no está en el registro);
// máximo 5 posiciones, descendente por volumen.
type TopProductsDTO struct {
	Labels []string `json:"labels"`
	Data   []int64  `json:"data"`
}

// RecentMovementDTO un movimiento en la vista de actividad reciente.
// El timestamp se serializa como instante ISO-8601 en UTC; un extremo
// ausente (entrada o salida externa) se serializa como null.
type RecentMovementDTO struct {
	MovementID   string  `json:"movement_id"`
	Timestamp    string  `json:"timestamp"`
	ProductID    string  `json:"product_id"`
	FromLocation *string `json:"from_location"`
	ToLocation   *string `json:"to_location"`
	Qty          int64   `json:"qty"`
}

// RecentMovementsDTO los últimos movimientos (máximo 10, timestamp descendente).
type RecentMovementsDTO struct {
	Items []RecentMovementDTO `json:"items"`
}

// ── Reporte de balance ────────────────────────────────────────────────────────

// BalanceRowDTO una fila del reporte de saldos: producto en ubicación con saldo neto.
// Solo se listan saldos distintos de cero.
type BalanceRowDTO struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`
	Qty          int64  `json:"qty"`
}

// BalanceReportDTO reporte tabular de saldos por (producto, ubicación).
type BalanceReportDTO struct {
	Items []BalanceRowDTO `json:"items"`
}
