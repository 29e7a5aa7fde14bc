package salesapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// APIError normaliza respostas não-2xx do backend de vendas: Message vem do
// campo "message" ou "error" do corpo, com fallback genérico.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sales api: status %d: %s", e.Status, e.Message)
}

// errorBody formatos de erro conhecidos do backend.
type errorBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

// loginBody o backend devolve o token em "token" ou "access_token",
// dependendo da versão.
type loginBody struct {
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
}

// RegisterInput payload de POST /auth/users.
type RegisterInput struct {
	Name     string `json:"name"`
	CNPJ     string `json:"cnpj"`
	Email    string `json:"email"`
	Celular  string `json:"celular"`
	Password string `json:"password"`
}

// UpdateSellerInput payload de PUT /auth/users/{id}. Campos nil são omitidos.
type UpdateSellerInput struct {
	Name     *string `json:"name,omitempty"`
	CNPJ     *string `json:"cnpj,omitempty"`
	Email    *string `json:"email,omitempty"`
	Celular  *string `json:"celular,omitempty"`
	Password *string `json:"password,omitempty"`
}

// ProductInput payload de POST /product/.
type ProductInput struct {
	Nome       string          `json:"nome"`
	Preco      decimal.Decimal `json:"preco"`
	Quantidade int             `json:"quantidade"`
	Status     string          `json:"status"`
	Image      string          `json:"image,omitempty"`
}

// UpdateProductInput payload de PUT /product/{id}. Campos nil são omitidos.
type UpdateProductInput struct {
	Nome       *string          `json:"nome,omitempty"`
	Preco      *decimal.Decimal `json:"preco,omitempty"`
	Quantidade *int             `json:"quantidade,omitempty"`
	Status     *string          `json:"status,omitempty"`
	Image      *string          `json:"image,omitempty"`
}

// decodeList normaliza os dois formatos de coleção que o backend devolve:
// um array puro ou um objeto com a coleção sob key (ex: {"users": [...]}).
// A normalização acontece aqui para que as camadas de cima vejam um único
// formato por endpoint.
func decodeList[T any](raw json.RawMessage, key string) ([]T, error) {
	// corpo vazio em 2xx: coleção vazia
	if len(bytes.TrimSpace(raw)) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}

	var keyed map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keyed); err != nil {
		return nil, fmt.Errorf("sales api: formato de lista inesperado: %w", err)
	}
	inner, ok := keyed[key]
	if !ok {
		// objeto sem a chave esperada: trata como coleção vazia
		return []T{}, nil
	}
	if err := json.Unmarshal(inner, &items); err != nil {
		return nil, fmt.Errorf("sales api: decodificar %q: %w", key, err)
	}
	return items, nil
}
