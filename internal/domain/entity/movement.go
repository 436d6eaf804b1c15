package entity

import "time"

// Tipos de movimiento, derivados de qué extremos están poblados.
const (
	MovementKindInbound  = "inbound"  // entrada externa: solo destino
	MovementKindOutbound = "outbound" // salida externa: solo origen
	MovementKindTransfer = "transfer" // traslado: origen y destino
)

// Movement representa un evento inmutable del ledger: qty unidades de un producto
// entrando, saliendo o trasladándose entre ubicaciones. La dirección la codifica
// qué extremo está poblado (FromLocation/ToLocation), nunca el signo de Qty.
type Movement struct {
	ID           string
	Timestamp    time.Time
	ProductID    string
	FromLocation string // vacío = entrada externa
	ToLocation   string // vacío = salida externa
	Qty          int64  // estrictamente positivo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Kind clasifica el movimiento según sus extremos. Un movimiento sin ningún
// extremo es inválido y se rechaza en la capa de aplicación antes de persistir.
func (m *Movement) Kind() string {
	switch {
	case m.FromLocation == "" && m.ToLocation != "":
		return MovementKindInbound
	case m.FromLocation != "" && m.ToLocation == "":
		return MovementKindOutbound
	default:
		return MovementKindTransfer
	}
}
