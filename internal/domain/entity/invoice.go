package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura. El ciclo nominal es draft → sent → paid|overdue,
// pero no se valida una máquina de estados: cualquier valor del enum puede
// asignarse desde cualquier otro (permisividad deliberada).
const (
	StatusDraft   = "draft"
	StatusSent    = "sent"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

// DefaultTemplate plantilla usada cuando el cliente no especifica una.
const DefaultTemplate = "default"

// ValidStatus indica si s es uno de los cuatro estados del enum.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// Invoice representa la cabecera de una factura con sus líneas.
// CustomerID no tiene foreign key: si el cliente fue borrado la referencia
// queda colgando y las lecturas dependientes (export) responden not found.
// Los totales llegan calculados por el cliente y se almacenan tal cual,
// sin recomputación en el servidor.
type Invoice struct {
	ID            string
	UserID        string
	CustomerID    string
	InvoiceNumber string // único por usuario
	IssueDate     time.Time
	DueDate       *time.Time
	Items         []InvoiceItem
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	Status        string
	Notes         string
	Template      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InvoiceItem línea de una factura. Position conserva el orden original.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	Position    int
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Amount      decimal.Decimal
}
