package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/WallyssonSousa/seller-backoffice/internal/application/dto"
	"github.com/WallyssonSousa/seller-backoffice/internal/application/usecase"
)

// SaleHandler expõe a tela de vendas (protegido).
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler constrói o handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// List lista vendas, com filtro opcional ?search= por produto ou vendedor.
func (h *SaleHandler) List(c *fiber.Ctx) error {
	sales, err := h.uc.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.SaleListResponse{Sales: sales, Total: len(sales)})
}

// GetByID busca uma venda por ID.
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	sale, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(sale)
}

// Create registra uma venda (com a pré-checagem de estoque no caso de uso)
// e devolve a lista recarregada.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id é obrigatório"})
	}
	if err := h.uc.Create(c.UserContext(), in.ProductID, in.Quantity); err != nil {
		return writeError(c, err)
	}
	sales, err := h.uc.List(c.UserContext(), "")
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SaleListResponse{Sales: sales, Total: len(sales)})
}

// Inactivate faz o soft-delete e devolve a lista recarregada.
func (h *SaleHandler) Inactivate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	if err := h.uc.Inactivate(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	sales, err := h.uc.List(c.UserContext(), "")
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.SaleListResponse{Sales: sales, Total: len(sales)})
}
