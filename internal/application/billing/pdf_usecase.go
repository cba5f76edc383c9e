package billing

import (
	"context"
	"fmt"

	"github.com/sran4/invoice-manager/internal/domain"
	"github.com/sran4/invoice-manager/internal/domain/repository"
)

// PDFUseCase genera la representación PDF de una factura para descarga.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		generator:    generator,
	}
}

// DownloadInvoicePDF carga factura, cliente y emisor y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)     si todo sale bien
//   - domain.ErrNotFound            si la factura no existe para el usuario
//   - domain.ErrCustomerNotFound    si el cliente referenciado ya no existe
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, userID, invoiceID string) ([]byte, string, error) {
	inv, err := uc.invoiceRepo.GetByID(userID, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByID(userID, inv.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", domain.ErrCustomerNotFound
	}

	seller, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener emisor: %w", err)
	}
	if seller == nil {
		return nil, "", domain.ErrUserNotFound
	}

	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, inv, customer, seller)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar: %w", err)
	}
	filename := fmt.Sprintf("invoice_%s.pdf", inv.InvoiceNumber)
	return pdfBytes, filename, nil
}
