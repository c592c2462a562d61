// Package repository exposes the remote resource families as domain
// operations. Every read and write is total: a failed remote call is logged
// and collapsed to a documented fallback (empty collection, absence, false,
// or -1) so no network condition ever propagates past this boundary. The
// one exception is SaleRepository, whose caller needs the structured
// failure intact.
package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/Nic0aranda/PokeShop-sub000/logger"
)

// failureID is returned by id-producing writes when the remote call fails.
const failureID = -1

// guard runs a remote read and substitutes fallback when it fails.
func guard[T any](ctx context.Context, log *zap.Logger, op string, fallback T, fn func() (T, error)) T {
	v, err := fn()
	if err != nil {
		logger.For(ctx, log).Warn("remote call failed, using fallback", zap.String("op", op), zap.Error(err))
		return fallback
	}
	return v
}

// guardFound runs a remote lookup; any failure reads as "not found".
func guardFound[T any](ctx context.Context, log *zap.Logger, op string, fn func() (T, error)) (T, bool) {
	v, err := fn()
	if err != nil {
		var zero T
		logger.For(ctx, log).Warn("remote lookup failed, treating as absent", zap.String("op", op), zap.Error(err))
		return zero, false
	}
	return v, true
}

// guardOK runs a remote write; any failure reads as false.
func guardOK(ctx context.Context, log *zap.Logger, op string, fn func() error) bool {
	if err := fn(); err != nil {
		logger.For(ctx, log).Warn("remote write failed", zap.String("op", op), zap.Error(err))
		return false
	}
	return true
}

// guardID runs an id-producing write; any failure reads as failureID.
func guardID(ctx context.Context, log *zap.Logger, op string, fn func() (int, error)) int {
	id, err := fn()
	if err != nil {
		logger.For(ctx, log).Warn("remote write failed", zap.String("op", op), zap.Error(err))
		return failureID
	}
	return id
}

// guardSilent runs a fire-and-forget write. The caller gets no failure
// signal; the error is only logged.
func guardSilent(ctx context.Context, log *zap.Logger, op string, fn func() error) {
	if err := fn(); err != nil {
		logger.For(ctx, log).Error("remote write failed and was swallowed", zap.String("op", op), zap.Error(err))
	}
}
