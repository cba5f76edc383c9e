package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkDescriptionRequest body para POST y PUT /api/work-descriptions.
type WorkDescriptionRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Rate        decimal.Decimal `json:"rate"`
}

// WorkDescriptionDTO descripción de trabajo en respuestas.
type WorkDescriptionDTO struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Rate        decimal.Decimal `json:"rate"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// WorkDescriptionEnvelope respuesta con una descripción de trabajo.
type WorkDescriptionEnvelope struct {
	Success         bool               `json:"success"`
	WorkDescription WorkDescriptionDTO `json:"workDescription"`
}

// WorkDescriptionListResponse respuesta de GET /api/work-descriptions.
type WorkDescriptionListResponse struct {
	Success          bool                 `json:"success"`
	WorkDescriptions []WorkDescriptionDTO `json:"workDescriptions"`
}
