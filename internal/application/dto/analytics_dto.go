package dto

import "github.com/shopspring/decimal"

// StatusSummaryDTO conteo e ingresos por estado de factura.
type StatusSummaryDTO struct {
	Status  string          `json:"status"`
	Count   int64           `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// MonthlyRevenueDTO ingresos de un mes ("2026-08").
type MonthlyRevenueDTO struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DashboardSummaryDTO agregados para las gráficas del dashboard.
type DashboardSummaryDTO struct {
	Success        bool                `json:"success"`
	ByStatus       []StatusSummaryDTO  `json:"byStatus"`
	MonthlyRevenue []MonthlyRevenueDTO `json:"monthlyRevenue"`
}
