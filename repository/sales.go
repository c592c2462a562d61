package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Nic0aranda/PokeShop-sub000/client"
	"github.com/Nic0aranda/PokeShop-sub000/logger"
	"github.com/Nic0aranda/PokeShop-sub000/models"
)

// SaleRepository exposes the /ventas resource family. Unlike the other
// repositories it does NOT collapse failures to a fallback: checkout needs
// to tell a structured rejection (*client.APIError) apart from a transport
// failure, so both are returned intact.
type SaleRepository struct {
	client client.Doer
	log    *zap.Logger
}

func NewSaleRepository(c client.Doer, log *zap.Logger) *SaleRepository {
	return &SaleRepository{client: c, log: log}
}

// CreateSale submits a sale request. On a 2xx response the backend's sale
// record is returned. A well-formed rejection comes back as *client.APIError
// carrying the raw body; anything else is a transport error.
func (r *SaleRepository) CreateSale(ctx context.Context, req models.SaleRequest) (*models.SaleResponse, error) {
	var sale models.SaleResponse
	if err := client.PostJSON(ctx, r.client, "/ventas", req, &sale); err != nil {
		logger.For(ctx, r.log).Warn("sale creation failed", zap.Int("user_id", req.UserID), zap.Error(err))
		return nil, err
	}
	logger.For(ctx, r.log).Info("sale created",
		zap.Int("sale_id", sale.ID),
		zap.Int("user_id", req.UserID),
		zap.Float64("total", sale.Total),
	)
	return &sale, nil
}

func (r *SaleRepository) GetByID(ctx context.Context, id int) (models.SaleResponse, bool) {
	return guardFound(ctx, r.log, "sales.getById", func() (models.SaleResponse, error) {
		var sale models.SaleResponse
		err := client.GetJSON(ctx, r.client, fmt.Sprintf("/ventas/%d", id), nil, &sale)
		return sale, err
	})
}

func (r *SaleRepository) ListByUser(ctx context.Context, userID int) []models.SaleResponse {
	return guard(ctx, r.log, "sales.listByUser", []models.SaleResponse{}, func() ([]models.SaleResponse, error) {
		var sales []models.SaleResponse
		err := client.GetJSON(ctx, r.client, fmt.Sprintf("/ventas/usuario/%d", userID), nil, &sales)
		if err != nil {
			return nil, err
		}
		return sales, nil
	})
}
