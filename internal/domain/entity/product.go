package entity

import "time"

// Product representa un producto rastreado por el ledger de inventario.
// El ID lo asigna el cliente (ej. PROD001) y es inmutable una vez referenciado por un movimiento.
type Product struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
