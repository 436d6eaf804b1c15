package entity

import "time"

// Location representa una bodega, tienda u otro punto donde se almacena inventario.
// El ID lo asigna el cliente (ej. WH001, STORE001) y es inmutable una vez referenciado.
type Location struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
