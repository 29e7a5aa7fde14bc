package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("não autorizado")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrProductInactive   = errors.New("produto inativo")
)
