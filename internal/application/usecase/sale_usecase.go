package usecase

import (
	"context"
	"fmt"

	"github.com/WallyssonSousa/seller-backoffice/internal/domain"
	"github.com/WallyssonSousa/seller-backoffice/internal/domain/entity"
	"github.com/WallyssonSousa/seller-backoffice/internal/infrastructure/salesapi"
)

// SaleUseCase casos de uso da tela de vendas.
type SaleUseCase struct {
	client *salesapi.Client
}

// NewSaleUseCase constrói o caso de uso.
func NewSaleUseCase(client *salesapi.Client) *SaleUseCase {
	return &SaleUseCase{client: client}
}

// List busca todas as vendas e filtra por nome do produto ou do vendedor.
func (uc *SaleUseCase) List(ctx context.Context, search string) ([]entity.Sale, error) {
	sales, err := uc.client.ListSales(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]entity.Sale, 0, len(sales))
	for _, s := range sales {
		if matches(search, s.ProductName, s.SellerName) {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

// Get busca uma venda por ID.
func (uc *SaleUseCase) Get(ctx context.Context, id int) (*entity.Sale, error) {
	sale, err := uc.client.GetSale(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return sale, nil
}

// Create registra uma venda. A checagem de estoque aqui é apenas pré-checagem
// de UX: evita uma chamada destinada a falhar, mas a validação autoritativa
// continua sendo do backend, e o erro dele passa adiante intacto.
func (uc *SaleUseCase) Create(ctx context.Context, productID, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	product, err := uc.client.GetProduct(ctx, productID)
	if err != nil {
		return mapNotFound(err)
	}
	if !product.Active() {
		return domain.ErrProductInactive
	}
	if quantity > product.Quantidade {
		return fmt.Errorf("%w: disponível %d unidades", domain.ErrInsufficientStock, product.Quantidade)
	}
	return uc.client.CreateSale(ctx, productID, quantity)
}

// Inactivate faz o soft-delete da venda.
func (uc *SaleUseCase) Inactivate(ctx context.Context, id int) error {
	return mapNotFound(uc.client.InactivateSale(ctx, id))
}
