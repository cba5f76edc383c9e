package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StatusSummaryResult conteo e ingresos agrupados por estado de factura.
type StatusSummaryResult struct {
	Status  string
	Count   int64
	Revenue decimal.Decimal
}

// MonthlyRevenueResult ingresos de un mes calendario (Month = día 1 del mes).
type MonthlyRevenueResult struct {
	Month   time.Time
	Revenue decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	GetStatusSummary(ctx context.Context, userID string) ([]StatusSummaryResult, error)
	GetMonthlyRevenue(ctx context.Context, userID string, months int) ([]MonthlyRevenueResult, error)
}
