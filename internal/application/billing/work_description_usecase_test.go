package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sran4/invoice-manager/internal/application/billing"
	"github.com/sran4/invoice-manager/internal/application/dto"
	"github.com/sran4/invoice-manager/internal/domain"
)

// Caso 1: alta y lectura de una plantilla de trabajo.
func TestWorkDescription_CrearYLeer(t *testing.T) {
	uc := billing.NewWorkDescriptionUseCase(newFakeWorkDescriptionRepo())

	wd, err := uc.Create("user-1", dto.WorkDescriptionRequest{
		Title:       "Desarrollo backend",
		Description: "API REST en Go",
		Rate:        decimal.NewFromInt(80),
	})
	require.NoError(t, err)

	got, err := uc.Get("user-1", wd.ID)
	require.NoError(t, err)
	assert.Equal(t, "Desarrollo backend", got.Title)
	assert.True(t, got.Rate.Equal(decimal.NewFromInt(80)))
}

// Caso 2: title es requerido.
func TestWorkDescription_TitleRequerido(t *testing.T) {
	uc := billing.NewWorkDescriptionUseCase(newFakeWorkDescriptionRepo())

	_, err := uc.Create("user-1", dto.WorkDescriptionRequest{Description: "sin título"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 3: scoping por tenant en get y delete.
func TestWorkDescription_AisladoPorTenant(t *testing.T) {
	uc := billing.NewWorkDescriptionUseCase(newFakeWorkDescriptionRepo())

	wd, err := uc.Create("user-1", dto.WorkDescriptionRequest{Title: "Consultoría"})
	require.NoError(t, err)

	_, err = uc.Get("user-2", wd.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete("user-2", wd.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
