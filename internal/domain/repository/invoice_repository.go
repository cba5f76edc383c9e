package repository

import "github.com/sran4/invoice-manager/internal/domain/entity"

// InvoiceFilter filtros para el listado paginado de facturas.
// Si Search no está vacío el predicado es:
//
//	invoice_number ILIKE %Search% OR customer_id = ANY(CustomerIDs)
//
// donde CustomerIDs son los clientes del tenant que ya matchearon por
// nombre/email (búsqueda en dos fases).
type InvoiceFilter struct {
	Status      string // "" = sin filtro de estado
	Search      string
	CustomerIDs []string
	Limit       int
	Offset      int
}

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
// Igual que CustomerRepository, todo filtro incluye el usuario dueño.
type InvoiceRepository interface {
	// Create persiste cabecera y líneas. Retorna domain.ErrDuplicate si ya
	// existe (user_id, invoice_number): el índice único resuelve la carrera
	// de doble creación, no hay lectura previa.
	Create(invoice *entity.Invoice) error
	GetByID(userID, id string) (*entity.Invoice, error)
	// List devuelve la página de facturas (con líneas) ordenada por
	// created_at DESC y el total de la vista filtrada.
	List(userID string, f InvoiceFilter) ([]*entity.Invoice, int, error)
	// LastNumberWithPrefix devuelve el invoice_number más alto (orden
	// lexicográfico) del usuario que empiece por prefix, o "" si no hay.
	LastNumberWithPrefix(userID, prefix string) (string, error)
	// UpdateFields fusiona solo los campos provistos (nil = sin cambio) y
	// devuelve la factura actualizada, o nil si no hubo match.
	UpdateFields(userID, id string, status, notes *string) (*entity.Invoice, error)
	Delete(userID, id string) (bool, error)
}
