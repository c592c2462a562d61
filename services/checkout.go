package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Nic0aranda/PokeShop-sub000/client"
	"github.com/Nic0aranda/PokeShop-sub000/logger"
	"github.com/Nic0aranda/PokeShop-sub000/models"
)

// SaleCreator is the slice of the sale repository checkout depends on.
type SaleCreator interface {
	CreateSale(ctx context.Context, req models.SaleRequest) (*models.SaleResponse, error)
}

// CheckoutService turns cart state into a sale request and interprets the
// backend's answer. Quantities are not re-validated against current stock
// here: the backend is the sole authority on stock sufficiency at commit
// time, and the client performs no compensating action either way.
type CheckoutService struct {
	sales  SaleCreator
	logger *zap.Logger
}

func NewCheckoutService(sales SaleCreator, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{sales: sales, logger: logger}
}

// Checkout submits the whole cart as one sale. The outcome is three-way:
// a confirmed sale, a structured rejection whose raw body becomes the
// message verbatim, or a transport failure reported with a distinct
// "connection error" prefix. The cart is never cleared here; that is the
// caller's decision on a successful result.
func (s *CheckoutService) Checkout(ctx context.Context, userID int, items []models.CartItem) models.CheckoutResult {
	if len(items) == 0 {
		return models.CheckoutResult{Success: false, Message: "cart is empty"}
	}

	req := models.SaleRequest{UserID: userID, Items: make([]models.SaleItem, 0, len(items))}
	for _, item := range items {
		req.Items = append(req.Items, models.SaleItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	sale, err := s.sales.CreateSale(ctx, req)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			logger.For(ctx, s.logger).Info("checkout rejected by backend",
				zap.Int("user_id", userID),
				zap.Int("status", apiErr.Status),
			)
			return models.CheckoutResult{Success: false, Message: apiErr.Body}
		}
		logger.For(ctx, s.logger).Warn("checkout transport failure", zap.Int("user_id", userID), zap.Error(err))
		return models.CheckoutResult{Success: false, Message: fmt.Sprintf("connection error: %v", err)}
	}

	return models.CheckoutResult{
		Success: true,
		Message: fmt.Sprintf("Purchase confirmed: sale #%d, total %.2f", sale.ID, sale.Total),
	}
}
