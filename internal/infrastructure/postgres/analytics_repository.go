package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sran4/invoice-manager/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard de facturación.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetStatusSummary agrupa conteo e ingresos de las facturas del usuario por estado.
func (r *AnalyticsRepo) GetStatusSummary(ctx context.Context, userID string) ([]repository.StatusSummaryResult, error) {
	const query = `
		SELECT status, COUNT(*), COALESCE(SUM(total), 0)
		FROM invoices
		WHERE user_id = $1
		GROUP BY status
		ORDER BY status`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetStatusSummary: %w", err)
	}
	defer rows.Close()
	var results []repository.StatusSummaryResult
	for rows.Next() {
		var row repository.StatusSummaryResult
		if err := rows.Scan(&row.Status, &row.Count, &row.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.GetStatusSummary scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetMonthlyRevenue suma los ingresos de los últimos months meses calendario
// (mes en curso incluido), agrupados por mes de emisión.
func (r *AnalyticsRepo) GetMonthlyRevenue(ctx context.Context, userID string, months int) ([]repository.MonthlyRevenueResult, error) {
	const query = `
		SELECT date_trunc('month', issue_date) AS month, COALESCE(SUM(total), 0)
		FROM invoices
		WHERE user_id = $1
		  AND issue_date >= date_trunc('month', now()) - make_interval(months => $2 - 1)
		GROUP BY month
		ORDER BY month`
	rows, err := r.pool.Query(ctx, query, userID, months)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetMonthlyRevenue: %w", err)
	}
	defer rows.Close()
	var results []repository.MonthlyRevenueResult
	for rows.Next() {
		var row repository.MonthlyRevenueResult
		if err := rows.Scan(&row.Month, &row.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.GetMonthlyRevenue scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
