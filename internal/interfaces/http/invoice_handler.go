package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sran4/invoice-manager/internal/application/billing"
	"github.com/sran4/invoice-manager/internal/application/dto"
	"github.com/sran4/invoice-manager/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP de facturación (protegido).
type InvoiceHandler struct {
	uc        *billing.InvoiceUseCase
	numbering *billing.NumberingService
	pdfUC     *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, numbering *billing.NumberingService, pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, numbering: numbering, pdfUC: pdfUC}
}

// List devuelve la página filtrada de facturas del usuario.
// GET /api/invoices?page=&limit=&search=&status=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var q dto.ListInvoicesQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "query inválida"})
	}
	invoices, pagination, err := h.uc.List(userID, q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno", Details: err.Error()})
	}
	return c.JSON(dto.InvoiceListResponse{Success: true, Invoices: invoices, Pagination: pagination})
}

// NextNumber sugiere el siguiente número de factura del año en curso.
// El número es orientativo: no se reserva, y el índice único resuelve
// la carrera si dos clientes lo usan a la vez.
// GET /api/invoices/next-number
func (h *InvoiceHandler) NextNumber(c *fiber.Ctx) error {
	userID := GetUserID(c)
	number, err := h.numbering.NextNumber(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno", Details: err.Error()})
	}
	return c.JSON(dto.NextNumberResponse{Success: true, InvoiceNumber: number})
}

// Create crea una factura con sus líneas.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	invoice, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "datos inválidos", Details: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "ya existe una factura con ese número"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno", Details: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.InvoiceEnvelope{Success: true, Invoice: *invoice})
}

// GetByID obtiene una factura completa del usuario.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	userID := GetUserID(c)
	invoice, err := h.uc.Get(userID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno", Details: err.Error()})
	}
	return c.JSON(dto.InvoiceEnvelope{Success: true, Invoice: *invoice})
}

// Update actualiza solo los campos provistos (status y/o notes).
// PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	invoice, err := h.uc.Update(userID, c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "datos inválidos", Details: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno", Details: err.Error()})
	}
	return c.JSON(dto.InvoiceEnvelope{Success: true, Invoice: *invoice})
}

// Delete elimina una factura del usuario y sus líneas.
// DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if err := h.uc.Delete(userID, c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno", Details: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "factura eliminada"})
}

// Export devuelve la factura junto al cliente facturado, listos para
// renderizar fuera. Distingue en el 404 qué entidad falta.
// GET /api/invoices/:id/export
func (h *InvoiceHandler) Export(c *fiber.Ctx) error {
	userID := GetUserID(c)
	invoice, customer, err := h.uc.Export(userID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "factura no encontrada"})
		}
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno", Details: err.Error()})
	}
	return c.JSON(dto.InvoiceExportResponse{Success: true, Invoice: *invoice, Customer: *customer})
}

// ExportPDF genera y descarga el PDF de la factura.
// GET /api/invoices/:id/export/pdf
func (h *InvoiceHandler) ExportPDF(c *fiber.Ctx) error {
	userID := GetUserID(c)
	pdfBytes, filename, err := h.pdfUC.DownloadInvoicePDF(c.Context(), userID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "factura no encontrada"})
		}
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "cliente no encontrado"})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno", Details: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
