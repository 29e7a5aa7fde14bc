package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resposta de GET /api/dashboard/summary.
// Todos os agregados são derivados no serviço a partir da coleção completa
// de vendas; nada disso é armazenado.
type DashboardSummaryDTO struct {
	TotalUnits     int             `json:"total_units"`     // unidades vendidas
	TotalRevenue   decimal.Decimal `json:"total_revenue"`   // Σ unit_price × quantity
	ActiveProducts int             `json:"active_products"` // produtos ativos distintos no catálogo

	// Receita por produto na ordem de primeira aparição (gráfico de barras)
	RevenueByProduct []ProductRevenueDTO `json:"revenue_by_product"`

	// Top-5 por receita, decrescente; empates mantêm a ordem de aparição
	TopProducts []ProductRevenueDTO `json:"top_products"`

	// Receita por dia-calendário, chave no formato pt-BR "02/01/2006"
	RevenueByDay []DailyRevenueDTO `json:"revenue_by_day"`
}

// ProductRevenueDTO total acumulado de um produto.
type ProductRevenueDTO struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// DailyRevenueDTO total de um dia-calendário.
type DailyRevenueDTO struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}
