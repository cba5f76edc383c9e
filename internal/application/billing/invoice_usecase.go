package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sran4/invoice-manager/internal/application/dto"
	"github.com/sran4/invoice-manager/internal/domain"
	"github.com/sran4/invoice-manager/internal/domain/entity"
	"github.com/sran4/invoice-manager/internal/domain/repository"
)

// InvoiceUseCase gestiona el ciclo de vida de las facturas de un usuario:
// creación, lectura, actualización parcial (status/notes), borrado y export.
type InvoiceUseCase struct {
	txRunner     TxRunner
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(txRunner TxRunner, invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository) *InvoiceUseCase {
	return &InvoiceUseCase{txRunner: txRunner, invoiceRepo: invoiceRepo, customerRepo: customerRepo}
}

// Create crea una factura en estado draft.
//
// Validaciones antes de escribir (nunca hay escrituras parciales):
//   - customerId, invoiceNumber, issueDate e items no vacíos
//   - el cliente referenciado existe y es del usuario
//
// Los totales se almacenan tal como los envió el cliente. La unicidad de
// (userID, invoiceNumber) la garantiza el índice único: un duplicado retorna
// domain.ErrDuplicate, incluso ante creaciones concurrentes.
func (uc *InvoiceUseCase) Create(ctx context.Context, userID string, in dto.CreateInvoiceRequest) (*dto.InvoiceDTO, error) {
	if in.CustomerID == "" || in.InvoiceNumber == "" || in.IssueDate.IsZero() || len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: customerId, invoiceNumber, issueDate e items son requeridos", domain.ErrInvalidInput)
	}

	customer, err := uc.customerRepo.GetByID(userID, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: el cliente referenciado no existe", domain.ErrInvalidInput)
	}

	template := in.Template
	if template == "" {
		template = entity.DefaultTemplate
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		UserID:        userID,
		CustomerID:    in.CustomerID,
		InvoiceNumber: in.InvoiceNumber,
		IssueDate:     in.IssueDate,
		DueDate:       in.DueDate,
		Subtotal:      in.Subtotal,
		Tax:           in.Tax,
		Discount:      in.Discount,
		Total:         in.Total,
		Status:        entity.StatusDraft,
		Notes:         in.Notes,
		Template:      template,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for i, item := range in.Items {
		inv.Items = append(inv.Items, entity.InvoiceItem{
			ID:          uuid.New().String(),
			InvoiceID:   inv.ID,
			Position:    i,
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
		})
	}

	// Cabecera y líneas en una sola transacción.
	err = uc.txRunner.RunInvoices(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		return invoiceRepo.Create(inv)
	})
	if err != nil {
		return nil, err
	}

	out := toInvoiceDTO(inv)
	return &out, nil
}

// Get obtiene una factura del usuario. Una factura de otro tenant responde
// ErrNotFound, indistinguible de una inexistente.
func (uc *InvoiceUseCase) Get(userID, id string) (*dto.InvoiceDTO, error) {
	inv, err := uc.invoiceRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	out := toInvoiceDTO(inv)
	return &out, nil
}

// Update fusiona solo los campos provistos (status y/o notes). No se
// re-verifica unicidad: el número de factura no es mutable por esta vía.
// El enum de estados es permisivo: cualquier valor válido puede asignarse
// desde cualquier otro.
func (uc *InvoiceUseCase) Update(userID, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceDTO, error) {
	if in.Status != nil && !entity.ValidStatus(*in.Status) {
		return nil, fmt.Errorf("%w: status debe ser draft, sent, paid u overdue", domain.ErrInvalidInput)
	}
	inv, err := uc.invoiceRepo.UpdateFields(userID, id, in.Status, in.Notes)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	out := toInvoiceDTO(inv)
	return &out, nil
}

// Delete elimina la factura del usuario. No hay efectos en cascada sobre
// clientes ni descripciones de trabajo.
func (uc *InvoiceUseCase) Delete(userID, id string) error {
	ok, err := uc.invoiceRepo.Delete(userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Export devuelve la factura junto con su cliente. Si el cliente fue borrado
// (referencia colgante) responde ErrCustomerNotFound, nombrando la entidad
// que falta en vez de entregar un resultado inconsistente.
func (uc *InvoiceUseCase) Export(userID, id string) (*dto.InvoiceDTO, *dto.CustomerDTO, error) {
	inv, err := uc.invoiceRepo.GetByID(userID, id)
	if err != nil {
		return nil, nil, err
	}
	if inv == nil {
		return nil, nil, domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(userID, inv.CustomerID)
	if err != nil {
		return nil, nil, err
	}
	if customer == nil {
		return nil, nil, domain.ErrCustomerNotFound
	}
	invDTO := toInvoiceDTO(inv)
	custDTO := toCustomerDTO(customer)
	return &invDTO, &custDTO, nil
}
