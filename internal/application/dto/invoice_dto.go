package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItemDTO línea de factura en el wire. Amount llega calculado por el
// cliente y se conserva tal cual.
type InvoiceItemDTO struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// CreateInvoiceRequest body para POST /api/invoices.
// Los totales (subtotal, tax, discount, total) se confían al cliente;
// el servidor no los recalcula ni los verifica.
type CreateInvoiceRequest struct {
	CustomerID    string           `json:"customerId"`
	InvoiceNumber string           `json:"invoiceNumber"`
	IssueDate     time.Time        `json:"issueDate"`
	DueDate       *time.Time       `json:"dueDate,omitempty"`
	Items         []InvoiceItemDTO `json:"items"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	Tax           decimal.Decimal  `json:"tax"`
	Discount      decimal.Decimal  `json:"discount"`
	Total         decimal.Decimal  `json:"total"`
	Notes         string           `json:"notes,omitempty"`
	Template      string           `json:"template,omitempty"`
}

// UpdateInvoiceRequest body para PUT /api/invoices/:id.
// Solo los campos presentes se fusionan (nil = sin cambio).
type UpdateInvoiceRequest struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// ListInvoicesQuery query params de GET /api/invoices.
type ListInvoicesQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
	Status string `query:"status"` // draft|sent|paid|overdue|all (vacío = all)
}

// InvoiceDTO factura en respuestas.
type InvoiceDTO struct {
	ID            string           `json:"id"`
	CustomerID    string           `json:"customerId"`
	InvoiceNumber string           `json:"invoiceNumber"`
	IssueDate     time.Time        `json:"issueDate"`
	DueDate       *time.Time       `json:"dueDate,omitempty"`
	Items         []InvoiceItemDTO `json:"items"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	Tax           decimal.Decimal  `json:"tax"`
	Discount      decimal.Decimal  `json:"discount"`
	Total         decimal.Decimal  `json:"total"`
	Status        string           `json:"status"`
	Notes         string           `json:"notes,omitempty"`
	Template      string           `json:"template"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// InvoiceEnvelope respuesta con una factura.
type InvoiceEnvelope struct {
	Success bool       `json:"success"`
	Invoice InvoiceDTO `json:"invoice"`
}

// InvoiceListResponse respuesta de GET /api/invoices.
type InvoiceListResponse struct {
	Success    bool          `json:"success"`
	Invoices   []InvoiceDTO  `json:"invoices"`
	Pagination PaginationDTO `json:"pagination"`
}

// InvoiceExportResponse respuesta de GET /api/invoices/:id/export.
type InvoiceExportResponse struct {
	Success  bool        `json:"success"`
	Invoice  InvoiceDTO  `json:"invoice"`
	Customer CustomerDTO `json:"customer"`
}

// NextNumberResponse respuesta de GET /api/invoices/next-number.
// El número es una propuesta: la unicidad real se garantiza al crear.
type NextNumberResponse struct {
	Success       bool   `json:"success"`
	InvoiceNumber string `json:"invoiceNumber"`
}
