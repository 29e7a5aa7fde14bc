package dto

import (
	"github.com/shopspring/decimal"

	"github.com/WallyssonSousa/seller-backoffice/internal/domain/entity"
)

// CreateProductRequest entrada para criar um produto.
type CreateProductRequest struct {
	Nome       string          `json:"nome"`
	Preco      decimal.Decimal `json:"preco"`
	Quantidade int             `json:"quantidade"`
	Status     string          `json:"status"`
	Image      string          `json:"image"`
}

// UpdateProductRequest entrada para atualizar um produto. Campos nil não
// são enviados ao backend.
type UpdateProductRequest struct {
	Nome       *string          `json:"nome"`
	Preco      *decimal.Decimal `json:"preco"`
	Quantidade *int             `json:"quantidade"`
	Status     *string          `json:"status"`
	Image      *string          `json:"image"`
}

// ProductListResponse lista de produtos após o filtro de busca.
type ProductListResponse struct {
	Products []entity.Product `json:"products"`
	Total    int              `json:"total"`
}
