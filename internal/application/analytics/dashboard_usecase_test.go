package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sran4/invoice-manager/internal/application/analytics"
	"github.com/sran4/invoice-manager/internal/domain/repository"
)

// fakeAnalyticsRepo devuelve filas enlatadas y registra el userID pedido.
type fakeAnalyticsRepo struct {
	statusRows  []repository.StatusSummaryResult
	monthlyRows []repository.MonthlyRevenueResult
	statusErr   error
	monthlyErr  error
	askedUserID string
}

func (f *fakeAnalyticsRepo) GetStatusSummary(_ context.Context, userID string) ([]repository.StatusSummaryResult, error) {
	f.askedUserID = userID
	return f.statusRows, f.statusErr
}

func (f *fakeAnalyticsRepo) GetMonthlyRevenue(_ context.Context, userID string, _ int) ([]repository.MonthlyRevenueResult, error) {
	return f.monthlyRows, f.monthlyErr
}

// Caso 1: resumen completo con los dos bloques y meses formateados yyyy-mm.
func TestDashboardSummary_OK(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		statusRows: []repository.StatusSummaryResult{
			{Status: "draft", Count: 2, Revenue: decimal.NewFromInt(300)},
			{Status: "paid", Count: 5, Revenue: decimal.NewFromInt(2500)},
		},
		monthlyRows: []repository.MonthlyRevenueResult{
			{Month: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), Revenue: decimal.NewFromInt(1200)},
			{Month: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Revenue: decimal.NewFromInt(1600)},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	summary, err := uc.GetSummary(context.Background(), "user-1")
	require.NoError(t, err)

	assert.True(t, summary.Success)
	assert.Equal(t, "user-1", repo.askedUserID)
	require.Len(t, summary.ByStatus, 2)
	assert.Equal(t, int64(5), summary.ByStatus[1].Count)
	require.Len(t, summary.MonthlyRevenue, 2)
	assert.Equal(t, "2026-07", summary.MonthlyRevenue[0].Month)
}

// Caso 2: un fallo en cualquiera de las dos consultas se propaga.
func TestDashboardSummary_PropagaErrores(t *testing.T) {
	boom := errors.New("db caída")

	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{statusErr: boom})
	_, err := uc.GetSummary(context.Background(), "user-1")
	assert.ErrorIs(t, err, boom)

	uc = analytics.NewDashboardUseCase(&fakeAnalyticsRepo{monthlyErr: boom})
	_, err = uc.GetSummary(context.Background(), "user-1")
	assert.ErrorIs(t, err, boom)
}

// Caso 3: usuario sin facturas → listas vacías (no nil), success true.
func TestDashboardSummary_SinDatos(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{})

	summary, err := uc.GetSummary(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, summary.ByStatus)
	assert.Empty(t, summary.ByStatus)
	assert.NotNil(t, summary.MonthlyRevenue)
	assert.Empty(t, summary.MonthlyRevenue)
}
