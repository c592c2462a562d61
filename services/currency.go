package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/Nic0aranda/PokeShop-sub000/logger"
)

// RateFetcher is the slice of the currency repository this service uses.
type RateFetcher interface {
	FetchReferenceRate(ctx context.Context) (float64, error)
	FetchConversion(ctx context.Context, amountUSD float64) (float64, error)
}

// CurrencyService converts USD amounts to the local currency. When the
// remote converter is down both GetReferenceRate and Convert degrade to the
// same fallback rate, so degraded-mode arithmetic stays self-consistent.
type CurrencyService struct {
	repo         RateFetcher
	fallbackRate float64
	logger       *zap.Logger
}

func NewCurrencyService(repo RateFetcher, fallbackRate float64, logger *zap.Logger) *CurrencyService {
	return &CurrencyService{repo: repo, fallbackRate: fallbackRate, logger: logger}
}

// FallbackRate is the rate used when the remote service is unreachable.
func (s *CurrencyService) FallbackRate() float64 {
	return s.fallbackRate
}

// GetReferenceRate returns the current USD reference rate, or the fallback
// when the remote service fails.
func (s *CurrencyService) GetReferenceRate(ctx context.Context) float64 {
	rate, err := s.repo.FetchReferenceRate(ctx)
	if err != nil {
		logger.For(ctx, s.logger).Warn("using fallback reference rate", zap.Float64("rate", s.fallbackRate))
		return s.fallbackRate
	}
	return rate
}

// Convert returns amountUSD in local currency, computing it locally with
// the fallback rate when the remote converter fails.
func (s *CurrencyService) Convert(ctx context.Context, amountUSD float64) float64 {
	converted, err := s.repo.FetchConversion(ctx, amountUSD)
	if err != nil {
		logger.For(ctx, s.logger).Warn("converting locally with fallback rate",
			zap.Float64("amount_usd", amountUSD),
			zap.Float64("rate", s.fallbackRate),
		)
		return amountUSD * s.fallbackRate
	}
	return converted
}
