package dto

import "github.com/WallyssonSousa/seller-backoffice/internal/domain/entity"

// UpdateSellerRequest entrada para atualizar um vendedor. Campos nil não
// são enviados ao backend.
type UpdateSellerRequest struct {
	Name     *string `json:"name"`
	CNPJ     *string `json:"cnpj"`
	Email    *string `json:"email"`
	Celular  *string `json:"celular"`
	Password *string `json:"password"`
}

// SellerListResponse lista de vendedores após o filtro de busca.
type SellerListResponse struct {
	Sellers []entity.Seller `json:"sellers"`
	Total   int             `json:"total"`
}
