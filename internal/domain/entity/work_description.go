package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkDescription es una descripción de trabajo reutilizable para líneas de factura.
type WorkDescription struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Rate        decimal.Decimal // tarifa por defecto 0
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
