package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Nic0aranda/PokeShop-sub000/models"
)

func newProductsServer(t *testing.T, deleted map[int]bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /productos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("categoria") == "3" {
			_, _ = w.Write([]byte(`[{"idProducto": 25, "nombre": "Pikachu", "precio": 100.0, "stock": 10, "categoria": 3, "activo": true}]`))
			return
		}
		_, _ = w.Write([]byte(`[
			{"idProducto": 25, "nombre": "Pikachu", "precio": 100.0, "stock": 10, "categoria": 3, "activo": true},
			{"id": 7, "nombre": "Snorlax", "precio": 250.0, "stock": 0,
			 "categoria": {"idCategoria": 1, "nombre": "Normal"}, "activo": true}
		]`))
	})
	mux.HandleFunc("DELETE /productos/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		if deleted[id] {
			http.Error(w, "Producto no encontrado", http.StatusNotFound)
			return
		}
		deleted[id] = true
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestProductRepository_List_DecodesAliasedFields(t *testing.T) {
	srv := newProductsServer(t, map[int]bool{})
	repo := NewProductRepository(newTestClient(srv), zap.NewNop())

	products := repo.List(context.Background())

	require.Len(t, products, 2)
	assert.Equal(t, 25, products[0].ID, "idProducto alias must decode")
	assert.Equal(t, 7, products[1].ID)
	require.NotNil(t, products[0].Category)
	assert.Equal(t, 3, products[0].Category.ID, "bare numeric category must decode")
	require.NotNil(t, products[1].Category)
	assert.Equal(t, "Normal", products[1].Category.Name, "nested category object must decode")
}

func TestProductRepository_ListByCategory_FiltersServerSide(t *testing.T) {
	srv := newProductsServer(t, map[int]bool{})
	repo := NewProductRepository(newTestClient(srv), zap.NewNop())

	products := repo.ListByCategory(context.Background(), 3)

	require.Len(t, products, 1)
	assert.Equal(t, "Pikachu", products[0].Name)
}

func TestProductRepository_List_EmptyOnFailure(t *testing.T) {
	repo := NewProductRepository(downDoer{}, zap.NewNop())

	products := repo.List(context.Background())

	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductRepository_GetByID_AbsentOnFailure(t *testing.T) {
	repo := NewProductRepository(downDoer{}, zap.NewNop())

	_, found := repo.GetByID(context.Background(), 25)

	assert.False(t, found)
}

func TestProductRepository_Delete_IsIdempotentForCaller(t *testing.T) {
	srv := newProductsServer(t, map[int]bool{})
	repo := NewProductRepository(newTestClient(srv), zap.NewNop())
	ctx := context.Background()

	assert.True(t, repo.Delete(ctx, 25), "first delete succeeds")
	var second bool
	assert.NotPanics(t, func() { second = repo.Delete(ctx, 25) })
	assert.False(t, second, "second delete reports failure, it does not throw")
}

func TestProductRepository_WritesDegradeToFalse(t *testing.T) {
	repo := NewProductRepository(downDoer{}, zap.NewNop())
	ctx := context.Background()

	assert.False(t, repo.Create(ctx, models.Product{Name: "Eevee", Price: 60, Stock: 5}))
	assert.False(t, repo.Update(ctx, models.Product{ID: 25, Name: "Pikachu"}))
	assert.False(t, repo.DecreaseStock(ctx, 25, 2))
	assert.False(t, repo.UploadImages(ctx, 25, []string{"aGVsbG8="}))
	assert.False(t, repo.DeleteImage(ctx, 9))
	assert.Empty(t, repo.ListImages(ctx, 25))
}
