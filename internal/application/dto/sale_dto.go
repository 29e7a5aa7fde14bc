package dto

import "github.com/WallyssonSousa/seller-backoffice/internal/domain/entity"

// CreateSaleRequest entrada para registrar uma venda.
type CreateSaleRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// SaleListResponse lista de vendas após o filtro de busca.
type SaleListResponse struct {
	Sales []entity.Sale `json:"sales"`
	Total int           `json:"total"`
}
