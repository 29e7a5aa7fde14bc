// Package salesapi implementa o cliente HTTP do backend de vendas: ponto
// único de contato com a API externa, com injeção do Bearer token e
// normalização de erros e de formatos de coleção.
package salesapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/andybalholm/brotli"

	"github.com/WallyssonSousa/seller-backoffice/internal/domain/entity"
)

const fallbackErrorMessage = "ocorreu um erro na API de vendas"

// Config parâmetros de construção do cliente. A base URL não é
// reconfigurável depois de criado.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client cliente do backend de vendas. Todas as falhas voltam como valores
// de erro; nenhum método entra em pânico por falha de rede ou status HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	store   TokenStore

	mu    sync.RWMutex
	token string
}

// NewClient constrói o cliente e restaura o token persistido, se houver.
func NewClient(cfg Config, store TokenStore) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		store:   store,
	}
	if store != nil {
		if tok, err := store.Load(); err == nil {
			c.token = tok
		}
	}
	return c
}

// Token devolve o token atual ("" se não autenticado).
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken define o token em memória e espelha no store persistente.
// Afeta todas as requisições seguintes.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	if c.store != nil {
		_ = c.store.Save(token)
	}
}

// ClearToken remove o token da memória e do store persistente.
func (c *Client) ClearToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	if c.store != nil {
		_ = c.store.Clear()
	}
}

// do executa uma requisição JSON contra o backend. body nil = sem corpo;
// out nil = resposta descartada. Não-2xx vira *APIError com a mensagem do
// servidor ("message" ou "error") ou o fallback genérico.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("sales api: serializar corpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("sales api: montar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "br")
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sales api: %s %s: %w", method, path, err)
	}
	if resp.Header.Get("Content-Encoding") == "br" {
		resp.Body = &readCloserWrapper{Reader: brotli.NewReader(resp.Body), Closer: resp.Body}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("sales api: ler resposta: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("sales api: decodificar resposta de %s %s: %w", method, path, err)
	}
	return nil
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode, Message: fallbackErrorMessage}
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		} else if body.Err != "" {
			apiErr.Message = body.Err
		}
	}
	return apiErr
}

// ── Auth ─────────────────────────────────────────────────────────────────────

// Register cria um vendedor. Não autentica: o fluxo segue para a verificação
// do celular.
func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	return c.do(ctx, http.MethodPost, "/auth/users", in, nil)
}

// Verify confirma o código enviado ao celular. Também não autentica.
func (c *Client) Verify(ctx context.Context, celular, code string) error {
	payload := map[string]string{"celular": celular, "code": code}
	return c.do(ctx, http.MethodPost, "/auth/users/verificar", payload, nil)
}

// Login obtém o token e, como efeito colateral, o define no cliente.
// O backend devolve o token em "token" ou "access_token".
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}
	var body loginBody
	if err := c.do(ctx, http.MethodPost, "/auth/login", payload, &body); err != nil {
		return "", err
	}
	token := body.Token
	if token == "" {
		token = body.AccessToken
	}
	if token != "" {
		c.SetToken(token)
	}
	return token, nil
}

// Logout limpa o token localmente. O backend não expõe invalidação de sessão.
func (c *Client) Logout() {
	c.ClearToken()
}

// ── Sellers ──────────────────────────────────────────────────────────────────

// ListSellers lista os vendedores. O backend devolve {"users": [...]} ou um
// array puro; ambos são aceitos.
func (c *Client) ListSellers(ctx context.Context) ([]entity.Seller, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/auth/users", nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[entity.Seller](raw, "users")
}

// GetSeller busca um vendedor por ID.
func (c *Client) GetSeller(ctx context.Context, id int) (*entity.Seller, error) {
	var seller entity.Seller
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/auth/users/%d/", id), nil, &seller); err != nil {
		return nil, err
	}
	return &seller, nil
}

// UpdateSeller atualiza campos de um vendedor.
func (c *Client) UpdateSeller(ctx context.Context, id int, in UpdateSellerInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/auth/users/%d", id), in, nil)
}

// ── Products ─────────────────────────────────────────────────────────────────

// ListProducts lista os produtos. Aceita array puro ou {"products": [...]}.
func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/product/", nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[entity.Product](raw, "products")
}

// GetProduct busca um produto por ID.
func (c *Client) GetProduct(ctx context.Context, id int) (*entity.Product, error) {
	var product entity.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/product/%d/", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct cria um produto.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput) error {
	return c.do(ctx, http.MethodPost, "/product/", in, nil)
}

// UpdateProduct atualiza campos de um produto.
func (c *Client) UpdateProduct(ctx context.Context, id int, in UpdateProductInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/product/%d", id), in, nil)
}

// InactivateProduct faz o soft-delete do produto (Active -> Inactive).
func (c *Client) InactivateProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/product/%d/inactivate/", id), nil, nil)
}

// ── Sales ────────────────────────────────────────────────────────────────────

// ListSales lista as vendas. Aceita array puro ou {"sales": [...]}.
func (c *Client) ListSales(ctx context.Context) ([]entity.Sale, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/sale/", nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[entity.Sale](raw, "sales")
}

// GetSale busca uma venda por ID.
func (c *Client) GetSale(ctx context.Context, id int) (*entity.Sale, error) {
	var sale entity.Sale
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/sale/%d/", id), nil, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// CreateSale registra uma venda. A validação autoritativa de estoque é do
// backend; a pré-checagem de UX fica no caso de uso.
func (c *Client) CreateSale(ctx context.Context, productID, quantity int) error {
	payload := map[string]int{"product_id": productID, "quantity": quantity}
	return c.do(ctx, http.MethodPost, "/sale/", payload, nil)
}

// InactivateSale faz o soft-delete da venda.
func (c *Client) InactivateSale(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/sale/%d/inactivate", id), nil, nil)
}

// readCloserWrapper lê do decodificador brotli mas fecha o corpo original.
type readCloserWrapper struct {
	io.Reader
	io.Closer
}
