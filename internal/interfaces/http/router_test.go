package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WallyssonSousa/seller-backoffice/internal/application/analytics"
	"github.com/WallyssonSousa/seller-backoffice/internal/application/session"
	"github.com/WallyssonSousa/seller-backoffice/internal/application/usecase"
	"github.com/WallyssonSousa/seller-backoffice/internal/infrastructure/salesapi"
	apphttp "github.com/WallyssonSousa/seller-backoffice/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

// backendFixture backend de vendas fake com os endpoints mínimos que o fluxo
// completo (login → telas) exercita.
func backendFixture(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"tok-e2e"}`))
	})
	mux.HandleFunc("GET /product/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products":[
			{"id":1,"nome":"Açaí 500ml","preco":"15.00","quantidade":10,"status":"Active"},
			{"id":2,"nome":"Tapioca","preco":"8.50","quantidade":3,"status":"Inactive"}
		]}`))
	})
	mux.HandleFunc("GET /sale/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":1,"product_id":1,"product_name":"Açaí 500ml","quantity":2,"unit_price":"15.00","created_at":"2026-08-30T10:00:00Z","seller_name":"Ana","status":"Active"}
		]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// buildApp monta a aplicação completa (router + middleware) contra o backend
// fake e devolve o app junto com o manager de sessão.
func buildApp(t *testing.T, srv *httptest.Server) (*fiber.App, *session.Manager) {
	t.Helper()
	client := salesapi.NewClient(salesapi.Config{BaseURL: srv.URL}, salesapi.NewMemoryTokenStore())
	sess := session.NewManager(client, testLogger())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Session:     sess,
		ProductUC:   usecase.NewProductUseCase(client),
		SellerUC:    usecase.NewSellerUseCase(client),
		SaleUC:      usecase.NewSaleUseCase(client),
		DashboardUC: analytics.NewDashboardUseCase(client),
	})
	return app, sess
}

// loginViaAPI faz o login pela rota pública e devolve o token da resposta.
func loginViaAPI(t *testing.T, app *fiber.App) string {
	t.Helper()
	body := bytes.NewBufferString(`{"email":"ana@loja.com","password":"secret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "login deve devolver 200")

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func authedGet(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests fluxo completo
// ──────────────────────────────────────────────────────────────────────────────

// O fluxo feliz: login pela rota pública e, com o token devolvido, acesso às
// telas protegidas.
func TestRouter_LoginEListaProdutos(t *testing.T) {
	app, _ := buildApp(t, backendFixture(t))
	token := loginViaAPI(t, app)

	resp := authedGet(t, app, "/api/products/", token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Products []struct {
			Nome string `json:"nome"`
		} `json:"products"`
		Total int `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, "Açaí 500ml", out.Products[0].Nome)
}

// O filtro ?search= é aplicado localmente, sem acento e sem caixa.
func TestRouter_ListaProdutosComBusca(t *testing.T) {
	app, _ := buildApp(t, backendFixture(t))
	token := loginViaAPI(t, app)

	resp := authedGet(t, app, "/api/products/?search=acai", token)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 1, out.Total, "a busca sem acento deve casar com o nome acentuado")
}

// O resumo do dashboard agrega as vendas devolvidas pelo backend.
func TestRouter_DashboardSummary(t *testing.T) {
	app, _ := buildApp(t, backendFixture(t))
	token := loginViaAPI(t, app)

	resp := authedGet(t, app, "/api/dashboard/summary", token)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		TotalUnits     int    `json:"total_units"`
		TotalRevenue   string `json:"total_revenue"`
		ActiveProducts int    `json:"active_products"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 2, out.TotalUnits)
	assert.Equal(t, "30.00", out.TotalRevenue)
	assert.Equal(t, 1, out.ActiveProducts, "apenas o produto ativo conta")
}

// Rotas protegidas sem token devolvem 401 antes de tocar o backend.
func TestRouter_ProtegidasSemToken_Retorna401(t *testing.T) {
	app, _ := buildApp(t, backendFixture(t))

	for _, path := range []string{
		"/api/products/",
		"/api/sellers/",
		"/api/sales/",
		"/api/dashboard/summary",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		resp.Body.Close()
	}
}

// Credenciais ruins no login: o handler repassa o status do backend.
func TestRouter_LoginFalha_RepassaStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"credenciais inválidas"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	app, _ := buildApp(t, srv)

	body := bytes.NewBufferString(`{"email":"ana@loja.com","password":"errada"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// A pré-checagem de estoque barra a venda antes de qualquer POST no backend
// e a resposta carrega o código INSUFFICIENT_STOCK.
func TestRouter_CriarVenda_EstoqueInsuficiente_Retorna422(t *testing.T) {
	salePosts := 0
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"tok-e2e"}`))
	})
	mux.HandleFunc("GET /product/1/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"nome":"Açaí 500ml","preco":"15.00","quantidade":5,"status":"Active"}`))
	})
	mux.HandleFunc("POST /sale/", func(w http.ResponseWriter, r *http.Request) {
		salePosts++
		w.WriteHeader(http.StatusCreated)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	app, _ := buildApp(t, srv)
	token := loginViaAPI(t, app)

	body := bytes.NewBufferString(`{"product_id":1,"quantity":6}`)
	req := httptest.NewRequest(http.MethodPost, "/api/sales/", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var out struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
	assert.Contains(t, out.Message, "estoque insuficiente")

	assert.Zero(t, salePosts, "a venda barrada na pré-checagem não deve chegar ao backend")
}

// Mutação bem-sucedida: 201 com a lista recarregada do backend, nunca um
// estado remendado localmente.
func TestRouter_CriarVenda_DevolveListaRecarregada(t *testing.T) {
	created := false
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"tok-e2e"}`))
	})
	mux.HandleFunc("GET /product/1/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"nome":"Açaí 500ml","preco":"15.00","quantidade":5,"status":"Active"}`))
	})
	mux.HandleFunc("POST /sale/", func(w http.ResponseWriter, r *http.Request) {
		created = true
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("GET /sale/", func(w http.ResponseWriter, r *http.Request) {
		if !created {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`[
			{"id":1,"product_id":1,"product_name":"Açaí 500ml","quantity":5,"unit_price":"15.00","created_at":"2026-08-30T10:00:00Z","seller_name":"Ana","status":"Active"}
		]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	app, _ := buildApp(t, srv)
	token := loginViaAPI(t, app)

	body := bytes.NewBufferString(`{"product_id":1,"quantity":5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/sales/", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, created, "a venda deve ter chegado ao backend")

	var out struct {
		Sales []struct {
			ProductName string `json:"product_name"`
			Quantity    int    `json:"quantity"`
		} `json:"sales"`
		Total int `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, 1, out.Total, "o corpo deve ser a lista recarregada após o POST")
	assert.Equal(t, "Açaí 500ml", out.Sales[0].ProductName)
	assert.Equal(t, 5, out.Sales[0].Quantity)
}

// O logout exige sessão ativa e derruba o token.
func TestRouter_Logout_DerrubaToken(t *testing.T) {
	app, sess := buildApp(t, backendFixture(t))
	token := loginViaAPI(t, app)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.False(t, sess.Authenticated())

	after := authedGet(t, app, "/api/products/", token)
	defer after.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, after.StatusCode)
}
