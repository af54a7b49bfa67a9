package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente del libro de caja y su saldo corriente.
// Balance positivo: el cliente debe al negocio ("Will Give"); negativo: el negocio le debe ("Will Get").
type Customer struct {
	ID              int64
	Name            string
	Phone           string // texto libre, sin validar
	Balance         decimal.Decimal
	CreatedAt       time.Time
	LastTransaction time.Time
}

// Outstanding indica si el cliente tiene saldo pendiente (distinto de cero).
func (c *Customer) Outstanding() bool {
	return !c.Balance.IsZero()
}

// Status devuelve la etiqueta del saldo usada en reportes.
func (c *Customer) Status() string {
	if c.Balance.IsPositive() {
		return StatusWillGive
	}
	return StatusWillGet
}

// Etiquetas de estado del saldo de un cliente.
const (
	StatusWillGive = "Will Give"
	StatusWillGet  = "Will Get"
)
