package entity

import "github.com/shopspring/decimal"

// Status de recursos soft-delete no backend de vendas.
// Inativar é uma transição Active -> Inactive; nada é apagado fisicamente.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Product representa um produto do catálogo. Os campos seguem o contrato
// JSON do backend de vendas (nome, preco, quantidade).
type Product struct {
	ID         int             `json:"id"`
	Nome       string          `json:"nome"`
	Preco      decimal.Decimal `json:"preco"`      // preço unitário de venda
	Quantidade int             `json:"quantidade"` // estoque disponível (>= 0)
	Status     string          `json:"status"`
	Image      string          `json:"image,omitempty"` // URI ou data-URI
}

// Active informa se o produto está ativo. Status vazio conta como ativo,
// pois o backend omite o campo em alguns retornos.
func (p Product) Active() bool {
	return p.Status == "" || p.Status == StatusActive
}
