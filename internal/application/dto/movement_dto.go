package dto

import "time"

// MovementRequest cuerpo para POST /api/movements y PUT /api/movements/:id.
// FromLocation/ToLocation vacíos indican entrada/salida externa; al menos uno
// debe estar presente. Timestamp vacío = fecha de creación.
type MovementRequest struct {
	MovementID   string     `json:"movement_id"`
	Timestamp    *time.Time `json:"timestamp"`
	ProductID    string     `json:"product_id"`
	FromLocation string     `json:"from_location"`
	ToLocation   string     `json:"to_location"`
	Qty          int64      `json:"qty"`
}

// MovementResponse representación HTTP de un movimiento del ledger.
type MovementResponse struct {
	MovementID   string    `json:"movement_id"`
	Timestamp    time.Time `json:"timestamp"`
	ProductID    string    `json:"product_id"`
	FromLocation string    `json:"from_location,omitempty"`
	ToLocation   string    `json:"to_location,omitempty"`
	Qty          int64     `json:"qty"`
	Kind         string    `json:"kind"` // inbound | outbound | transfer
}

// MovementListResponse listado de movimientos (snapshot ordenado por timestamp desc).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
