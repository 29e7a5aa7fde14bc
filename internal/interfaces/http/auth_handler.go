package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/WallyssonSousa/seller-backoffice/internal/application/dto"
	"github.com/WallyssonSousa/seller-backoffice/internal/application/session"
	"github.com/WallyssonSousa/seller-backoffice/internal/infrastructure/salesapi"
	"github.com/WallyssonSousa/seller-backoffice/pkg/mask"
)

// AuthHandler expõe registro, verificação de celular, login e logout.
type AuthHandler struct {
	sess *session.Manager
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(sess *session.Manager) *AuthHandler {
	return &AuthHandler{sess: sess}
}

// Register cadastra o vendedor no backend. Não autentica: o fluxo segue
// para a verificação do celular.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" || in.CNPJ == "" || in.Email == "" || in.Celular == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, cnpj, email, celular e password são obrigatórios"})
	}
	if err := mask.ValidateCNPJ(in.CNPJ); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "CNPJ inválido"})
	}
	err := h.sess.Register(c.UserContext(), salesapi.RegisterInput{
		Name:     in.Name,
		CNPJ:     mask.CNPJ(in.CNPJ),
		Email:    in.Email,
		Celular:  mask.Phone(in.Celular),
		Password: in.Password,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "cadastro criado; verifique o código enviado ao celular"})
}

// Verify confirma o código enviado ao celular. Não autentica; o fluxo segue
// para o login.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	var in dto.VerifyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Celular == "" || in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "celular e code são obrigatórios"})
	}
	if err := h.sess.Verify(c.UserContext(), mask.Phone(in.Celular), in.Code); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "celular verificado; faça o login"})
}

// Login autentica no backend e devolve o token mais o usuário local.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email e password são obrigatórios"})
	}
	user, token, err := h.sess.Login(c.UserContext(), in.Email, in.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.LoginResponse{Token: token, User: *user})
}

// Logout encerra a sessão local. Nenhuma chamada é feita ao backend.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sess.Logout()
	return c.JSON(dto.MessageResponse{Message: "sessão encerrada"})
}
