package billing

import (
	"context"

	"github.com/sran4/invoice-manager/internal/domain/entity"
	"github.com/sran4/invoice-manager/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de la base de datos, con un
// InvoiceRepository atado a la tx. Cabecera y líneas de una factura se
// persisten de forma atómica.
type TxRunner interface {
	RunInvoices(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// InvoicePDFGenerator genera la representación PDF de una factura.
// seller es el usuario dueño (sus datos de empresa van en el encabezado).
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, customer *entity.Customer, seller *entity.User) ([]byte, error)
}
