package entity

// Seller representa um usuário/vendedor do sistema. O backend é dono do
// registro; este serviço apenas lê e atualiza via API.
type Seller struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	CNPJ    string `json:"cnpj"`
	Email   string `json:"email"`
	Celular string `json:"celular"`
	Status  string `json:"status,omitempty"`
}
