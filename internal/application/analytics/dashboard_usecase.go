// Package analytics contiene los agregados de solo lectura que alimentan las
// gráficas del dashboard (ingresos por estado y por mes).
package analytics

import (
	"context"

	"github.com/sran4/invoice-manager/internal/application/dto"
	"github.com/sran4/invoice-manager/internal/domain/repository"
)

// dashboardMonths meses de historial de ingresos en el widget mensual.
const dashboardMonths = 6

// DashboardUseCase genera el resumen de facturación del usuario.
// No accede a la tabla de facturas directamente; delega en AnalyticsRepository.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO del usuario.
// Las dos consultas son independientes y se lanzan en paralelo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, userID string) (*dto.DashboardSummaryDTO, error) {
	type statusResult struct {
		rows []repository.StatusSummaryResult
		err  error
	}
	type monthlyResult struct {
		rows []repository.MonthlyRevenueResult
		err  error
	}

	statusCh := make(chan statusResult, 1)
	monthlyCh := make(chan monthlyResult, 1)

	go func() {
		rows, err := uc.analyticsRepo.GetStatusSummary(ctx, userID)
		statusCh <- statusResult{rows: rows, err: err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetMonthlyRevenue(ctx, userID, dashboardMonths)
		monthlyCh <- monthlyResult{rows: rows, err: err}
	}()

	st := <-statusCh
	if st.err != nil {
		return nil, st.err
	}
	mo := <-monthlyCh
	if mo.err != nil {
		return nil, mo.err
	}

	summary := &dto.DashboardSummaryDTO{
		Success:        true,
		ByStatus:       make([]dto.StatusSummaryDTO, 0, len(st.rows)),
		MonthlyRevenue: make([]dto.MonthlyRevenueDTO, 0, len(mo.rows)),
	}
	for _, r := range st.rows {
		summary.ByStatus = append(summary.ByStatus, dto.StatusSummaryDTO{
			Status:  r.Status,
			Count:   r.Count,
			Revenue: r.Revenue,
		})
	}
	for _, r := range mo.rows {
		summary.MonthlyRevenue = append(summary.MonthlyRevenue, dto.MonthlyRevenueDTO{
			Month:   r.Month.Format("2006-01"),
			Revenue: r.Revenue,
		})
	}
	return summary, nil
}
