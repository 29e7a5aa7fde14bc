// Package usecase contém os controladores de cada tela do backoffice:
// listagem com filtro de busca, mutações e a pré-checagem de estoque.
// Após qualquer mutação o estado é recarregado por completo do backend;
// não há patch incremental nem cache.
package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/WallyssonSousa/seller-backoffice/internal/application/dto"
	"github.com/WallyssonSousa/seller-backoffice/internal/domain"
	"github.com/WallyssonSousa/seller-backoffice/internal/domain/entity"
	"github.com/WallyssonSousa/seller-backoffice/internal/infrastructure/salesapi"
)

// ProductUseCase casos de uso da tela de produtos.
type ProductUseCase struct {
	client *salesapi.Client
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(client *salesapi.Client) *ProductUseCase {
	return &ProductUseCase{client: client}
}

// List busca o catálogo completo e aplica o filtro de busca por nome
// (case e acento insensível).
func (uc *ProductUseCase) List(ctx context.Context, search string) ([]entity.Product, error) {
	products, err := uc.client.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if matches(search, p.Nome) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Get busca um produto por ID.
func (uc *ProductUseCase) Get(ctx context.Context, id int) (*entity.Product, error) {
	product, err := uc.client.GetProduct(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return product, nil
}

// Create valida os campos e cria o produto. Status vazio vira Active.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) error {
	if in.Nome == "" {
		return domain.ErrInvalidInput
	}
	if in.Preco.IsNegative() || in.Quantidade < 0 {
		return domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}
	return uc.client.CreateProduct(ctx, salesapi.ProductInput{
		Nome:       in.Nome,
		Preco:      in.Preco,
		Quantidade: in.Quantidade,
		Status:     status,
		Image:      in.Image,
	})
}

// Update valida e atualiza campos de um produto.
func (uc *ProductUseCase) Update(ctx context.Context, id int, in dto.UpdateProductRequest) error {
	if in.Nome != nil && *in.Nome == "" {
		return domain.ErrInvalidInput
	}
	if in.Preco != nil && in.Preco.IsNegative() {
		return domain.ErrInvalidInput
	}
	if in.Quantidade != nil && *in.Quantidade < 0 {
		return domain.ErrInvalidInput
	}
	err := uc.client.UpdateProduct(ctx, id, salesapi.UpdateProductInput{
		Nome:       in.Nome,
		Preco:      in.Preco,
		Quantidade: in.Quantidade,
		Status:     in.Status,
		Image:      in.Image,
	})
	return mapNotFound(err)
}

// Inactivate faz o soft-delete do produto.
func (uc *ProductUseCase) Inactivate(ctx context.Context, id int) error {
	return mapNotFound(uc.client.InactivateProduct(ctx, id))
}

// mapNotFound converte 404 do backend no erro de domínio correspondente.
func mapNotFound(err error) error {
	var apiErr *salesapi.APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return domain.ErrNotFound
	}
	return err
}
