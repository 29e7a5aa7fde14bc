package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa uma venda registrada no backend. O total não é armazenado;
// é sempre derivado de unit_price × quantity.
type Sale struct {
	ID          int             `json:"id"`
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CreatedAt   time.Time       `json:"created_at"`
	SellerName  string          `json:"seller_name,omitempty"`
	Status      string          `json:"status,omitempty"`
}

// Total devolve unit_price × quantity.
func (s Sale) Total() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// Active informa se a venda conta para os agregados. Status vazio conta como
// ativa (backend omite o campo em alguns retornos).
func (s Sale) Active() bool {
	return s.Status == "" || s.Status == StatusActive
}

// ProductLabel devolve o rótulo usado nos agregados por produto:
// o nome quando presente, senão "Produto ID: <id>".
func (s Sale) ProductLabel() string {
	if s.ProductName != "" {
		return s.ProductName
	}
	return fmt.Sprintf("Produto ID: %d", s.ProductID)
}
