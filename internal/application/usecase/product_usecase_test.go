package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WallyssonSousa/seller-backoffice/internal/application/dto"
	"github.com/WallyssonSousa/seller-backoffice/internal/application/usecase"
	"github.com/WallyssonSousa/seller-backoffice/internal/domain"
	"github.com/WallyssonSousa/seller-backoffice/internal/infrastructure/salesapi"
)

func newProductUC(t *testing.T, handler http.HandlerFunc) *usecase.ProductUseCase {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return usecase.NewProductUseCase(salesapi.NewClient(salesapi.Config{BaseURL: srv.URL}, nil))
}

func TestListProducts_FiltroAcentoECase(t *testing.T) {
	uc := newProductUC(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":1,"nome":"Caneca Térmica","preco":"10","quantidade":3,"status":"Active"},
			{"id":2,"nome":"Camiseta","preco":"40","quantidade":10,"status":"Active"}
		]`))
	})
	ctx := context.Background()

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := uc.List(ctx, "TÉRMICA")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Caneca Térmica", found[0].Nome)

	found, err = uc.List(ctx, "termica")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestCreateProduct_Validacao(t *testing.T) {
	calls := 0
	uc := newProductUC(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
	})
	ctx := context.Background()

	// nome obrigatório e valores não negativos, sem chamada de rede
	err := uc.Create(ctx, dto.CreateProductRequest{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.Create(ctx, dto.CreateProductRequest{Nome: "Caneca", Preco: decimal.NewFromInt(-1)})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.Create(ctx, dto.CreateProductRequest{Nome: "Caneca", Quantidade: -1})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Zero(t, calls)

	err = uc.Create(ctx, dto.CreateProductRequest{Nome: "Caneca", Preco: decimal.NewFromInt(10), Quantidade: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestCreateProduct_StatusPadraoActive(t *testing.T) {
	var gotStatus string
	uc := newProductUC(t, func(w http.ResponseWriter, r *http.Request) {
		var in map[string]any
		_ = jsonDecode(r, &in)
		gotStatus, _ = in["status"].(string)
		w.WriteHeader(http.StatusCreated)
	})

	err := uc.Create(context.Background(), dto.CreateProductRequest{Nome: "Caneca", Preco: decimal.NewFromInt(10)})
	require.NoError(t, err)
	assert.Equal(t, "Active", gotStatus)
}

func jsonDecode(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func TestGetProduct_NaoEncontrado(t *testing.T) {
	uc := newProductUC(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"produto não encontrado"}`))
	})

	_, err := uc.Get(context.Background(), 99)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
