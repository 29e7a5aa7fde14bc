// Package analytics deriva os agregados do dashboard a partir da coleção
// completa de vendas. Nada é armazenado: cada chamada recalcula tudo.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/WallyssonSousa/seller-backoffice/internal/application/dto"
	"github.com/WallyssonSousa/seller-backoffice/internal/domain/entity"
	"github.com/WallyssonSousa/seller-backoffice/internal/infrastructure/salesapi"
)

const topProducts = 5 // tamanho do ranking do dashboard

// dayLayout chave de agrupamento por dia-calendário, formato pt-BR.
const dayLayout = "02/01/2006"

// DashboardUseCase monta o resumo do dashboard.
type DashboardUseCase struct {
	client *salesapi.Client
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(client *salesapi.Client) *DashboardUseCase {
	return &DashboardUseCase{client: client}
}

// Summary busca vendas e produtos em paralelo e deriva:
// unidades vendidas, receita total, produtos ativos distintos, receita por
// produto, top-5 por receita e receita por dia. Vendas inativadas não contam.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	var (
		sales    []entity.Sale
		products []entity.Product
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sales, err = uc.client.ListSales(ctx)
		if err != nil {
			return fmt.Errorf("dashboard: vendas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		products, err = uc.client.ListProducts(ctx)
		if err != nil {
			return fmt.Errorf("dashboard: produtos: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummaryDTO{
		TotalRevenue:     decimal.Zero,
		RevenueByProduct: []dto.ProductRevenueDTO{},
		TopProducts:      []dto.ProductRevenueDTO{},
		RevenueByDay:     []dto.DailyRevenueDTO{},
	}

	// acumuladores na ordem de primeira aparição; a iteração é estável
	byProduct := map[string]int{} // label -> índice em RevenueByProduct
	byDay := map[string]int{}     // data -> índice em RevenueByDay

	for _, sale := range sales {
		if !sale.Active() {
			continue
		}
		total := sale.Total()

		summary.TotalUnits += sale.Quantity
		summary.TotalRevenue = summary.TotalRevenue.Add(total)

		label := sale.ProductLabel()
		if i, ok := byProduct[label]; ok {
			summary.RevenueByProduct[i].Quantity += sale.Quantity
			summary.RevenueByProduct[i].Total = summary.RevenueByProduct[i].Total.Add(total)
		} else {
			byProduct[label] = len(summary.RevenueByProduct)
			summary.RevenueByProduct = append(summary.RevenueByProduct, dto.ProductRevenueDTO{
				Name:     label,
				Quantity: sale.Quantity,
				Total:    total,
			})
		}

		if !sale.CreatedAt.IsZero() {
			day := sale.CreatedAt.Format(dayLayout)
			if i, ok := byDay[day]; ok {
				summary.RevenueByDay[i].Total = summary.RevenueByDay[i].Total.Add(total)
			} else {
				byDay[day] = len(summary.RevenueByDay)
				summary.RevenueByDay = append(summary.RevenueByDay, dto.DailyRevenueDTO{Date: day, Total: total})
			}
		}
	}

	for _, p := range products {
		if p.Active() {
			summary.ActiveProducts++
		}
	}

	// ranking decrescente por receita; sort estável preserva a ordem de
	// aparição nos empates
	ranked := make([]dto.ProductRevenueDTO, len(summary.RevenueByProduct))
	copy(ranked, summary.RevenueByProduct)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total.GreaterThan(ranked[j].Total)
	})
	if len(ranked) > topProducts {
		ranked = ranked[:topProducts]
	}
	summary.TopProducts = ranked

	return summary, nil
}
