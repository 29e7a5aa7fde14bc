package dto

import "github.com/WallyssonSousa/seller-backoffice/internal/domain/entity"

// RegisterRequest entrada de POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	CNPJ     string `json:"cnpj"`
	Email    string `json:"email"`
	Celular  string `json:"celular"`
	Password string `json:"password"`
}

// VerifyRequest entrada de POST /api/auth/verify.
type VerifyRequest struct {
	Celular string `json:"celular"`
	Code    string `json:"code"`
}

// LoginRequest entrada de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse saída do login: o token do backend e o usuário local
// sintetizado a partir do email do formulário.
type LoginResponse struct {
	Token string        `json:"token"`
	User  entity.Seller `json:"user"`
}

// MessageResponse resposta simples de confirmação.
type MessageResponse struct {
	Message string `json:"message"`
}
