package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/WallyssonSousa/seller-backoffice/internal/application/dto"
	"github.com/WallyssonSousa/seller-backoffice/internal/application/usecase"
	"github.com/WallyssonSousa/seller-backoffice/pkg/mask"
)

// SellerHandler expõe a tela de vendedores (protegido).
type SellerHandler struct {
	uc *usecase.SellerUseCase
}

// NewSellerHandler constrói o handler.
func NewSellerHandler(uc *usecase.SellerUseCase) *SellerHandler {
	return &SellerHandler{uc: uc}
}

// List lista vendedores, com filtro opcional ?search= por nome ou email.
func (h *SellerHandler) List(c *fiber.Ctx) error {
	sellers, err := h.uc.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.SellerListResponse{Sellers: sellers, Total: len(sellers)})
}

// GetByID busca um vendedor por ID.
func (h *SellerHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	seller, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(seller)
}

// Update atualiza um vendedor e devolve o registro recarregado.
// CNPJ e celular, quando presentes, são validados e normalizados com máscara.
func (h *SellerHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	var in dto.UpdateSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.CNPJ != nil {
		if err := mask.ValidateCNPJ(*in.CNPJ); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "CNPJ inválido"})
		}
		masked := mask.CNPJ(*in.CNPJ)
		in.CNPJ = &masked
	}
	if in.Celular != nil {
		masked := mask.Phone(*in.Celular)
		in.Celular = &masked
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return writeError(c, err)
	}
	seller, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(seller)
}
