package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sran4/invoice-manager/internal/application/billing"
	"github.com/sran4/invoice-manager/internal/application/dto"
	"github.com/sran4/invoice-manager/internal/domain"
)

// WorkDescriptionHandler maneja las plantillas de trabajo reutilizables (protegido).
type WorkDescriptionHandler struct {
	uc *billing.WorkDescriptionUseCase
}

// NewWorkDescriptionHandler construye el handler.
func NewWorkDescriptionHandler(uc *billing.WorkDescriptionUseCase) *WorkDescriptionHandler {
	return &WorkDescriptionHandler{uc: uc}
}

// Create crea una descripción de trabajo del usuario.
// POST /api/work-descriptions
func (h *WorkDescriptionHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.WorkDescriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	wd, err := h.uc.Create(userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "datos inválidos", Details: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno", Details: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.WorkDescriptionEnvelope{Success: true, WorkDescription: *wd})
}

// List lista las descripciones de trabajo del usuario.
// GET /api/work-descriptions
func (h *WorkDescriptionHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	limit := c.QueryInt("limit", 0)
	offset := c.QueryInt("offset", 0)
	list, err := h.uc.List(userID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno", Details: err.Error()})
	}
	return c.JSON(dto.WorkDescriptionListResponse{Success: true, WorkDescriptions: list})
}

// GetByID obtiene una descripción de trabajo del usuario.
// GET /api/work-descriptions/:id
func (h *WorkDescriptionHandler) GetByID(c *fiber.Ctx) error {
	userID := GetUserID(c)
	wd, err := h.uc.Get(userID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "descripción de trabajo no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno", Details: err.Error()})
	}
	return c.JSON(dto.WorkDescriptionEnvelope{Success: true, WorkDescription: *wd})
}

// Update reemplaza una descripción de trabajo del usuario.
// PUT /api/work-descriptions/:id
func (h *WorkDescriptionHandler) Update(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.WorkDescriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	wd, err := h.uc.Update(userID, c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "datos inválidos", Details: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "descripción de trabajo no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno", Details: err.Error()})
	}
	return c.JSON(dto.WorkDescriptionEnvelope{Success: true, WorkDescription: *wd})
}

// Delete elimina una descripción de trabajo del usuario.
// DELETE /api/work-descriptions/:id
func (h *WorkDescriptionHandler) Delete(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if err := h.uc.Delete(userID, c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "descripción de trabajo no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "error interno", Details: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "descripción de trabajo eliminada"})
}
