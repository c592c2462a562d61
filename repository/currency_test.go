package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCurrencyRepository_FetchesRateAndConversion(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /dolar", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"valor": 945.5}`))
	})
	mux.HandleFunc("GET /convertir", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("monto"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"valor": 9455}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	repo := NewCurrencyRepository(newTestClient(srv), zap.NewNop())
	ctx := context.Background()

	rate, err := repo.FetchReferenceRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 945.5, rate)

	converted, err := repo.FetchConversion(ctx, 10.0)
	require.NoError(t, err)
	assert.Equal(t, 9455.0, converted)
}

func TestCurrencyRepository_ErrorsPropagateToTheService(t *testing.T) {
	repo := NewCurrencyRepository(downDoer{}, zap.NewNop())
	ctx := context.Background()

	_, err := repo.FetchReferenceRate(ctx)
	require.Error(t, err)
	_, err = repo.FetchConversion(ctx, 10.0)
	require.Error(t, err)
}
