package repository

import (
	"context"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/Nic0aranda/PokeShop-sub000/client"
)

// CurrencyRepository talks to the exchange-rate service. It returns raw
// results and errors without logging them: the currency service owns the
// fallback decision, logs the degrade once, and keeps both degraded paths
// on one constant.
type CurrencyRepository struct {
	client client.Doer
	log    *zap.Logger
}

func NewCurrencyRepository(c client.Doer, log *zap.Logger) *CurrencyRepository {
	return &CurrencyRepository{client: c, log: log}
}

type rateResponse struct {
	Value float64 `json:"valor"`
}

// FetchReferenceRate returns the current USD reference rate.
func (r *CurrencyRepository) FetchReferenceRate(ctx context.Context) (float64, error) {
	var out rateResponse
	if err := client.GetJSON(ctx, r.client, "/dolar", nil, &out); err != nil {
		return 0, err
	}
	return out.Value, nil
}

// FetchConversion asks the remote converter for the local-currency value of
// amountUSD.
func (r *CurrencyRepository) FetchConversion(ctx context.Context, amountUSD float64) (float64, error) {
	q := url.Values{}
	q.Set("monto", strconv.FormatFloat(amountUSD, 'f', -1, 64))
	var out rateResponse
	if err := client.GetJSON(ctx, r.client, "/convertir", q, &out); err != nil {
		return 0, err
	}
	return out.Value, nil
}
