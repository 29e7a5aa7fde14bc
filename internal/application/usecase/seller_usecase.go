package usecase

import (
	"context"

	"github.com/WallyssonSousa/seller-backoffice/internal/application/dto"
	"github.com/WallyssonSousa/seller-backoffice/internal/domain/entity"
	"github.com/WallyssonSousa/seller-backoffice/internal/infrastructure/salesapi"
)

// SellerUseCase casos de uso da tela de vendedores.
type SellerUseCase struct {
	client *salesapi.Client
}

// NewSellerUseCase constrói o caso de uso.
func NewSellerUseCase(client *salesapi.Client) *SellerUseCase {
	return &SellerUseCase{client: client}
}

// List busca todos os vendedores e filtra por nome ou email.
func (uc *SellerUseCase) List(ctx context.Context, search string) ([]entity.Seller, error) {
	sellers, err := uc.client.ListSellers(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]entity.Seller, 0, len(sellers))
	for _, s := range sellers {
		if matches(search, s.Name, s.Email) {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

// Get busca um vendedor por ID.
func (uc *SellerUseCase) Get(ctx context.Context, id int) (*entity.Seller, error) {
	seller, err := uc.client.GetSeller(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return seller, nil
}

// Update atualiza campos de um vendedor.
func (uc *SellerUseCase) Update(ctx context.Context, id int, in dto.UpdateSellerRequest) error {
	return mapNotFound(uc.client.UpdateSeller(ctx, id, salesapi.UpdateSellerInput{
		Name:     in.Name,
		CNPJ:     in.CNPJ,
		Email:    in.Email,
		Celular:  in.Celular,
		Password: in.Password,
	}))
}
