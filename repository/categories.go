package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Nic0aranda/PokeShop-sub000/client"
	"github.com/Nic0aranda/PokeShop-sub000/models"
)

// CategoryRepository exposes the /categorias resource family.
type CategoryRepository struct {
	client client.Doer
	log    *zap.Logger
}

func NewCategoryRepository(c client.Doer, log *zap.Logger) *CategoryRepository {
	return &CategoryRepository{client: c, log: log}
}

func (r *CategoryRepository) List(ctx context.Context) []models.Category {
	return guard(ctx, r.log, "categories.list", []models.Category{}, func() ([]models.Category, error) {
		var cats []models.Category
		if err := client.GetJSON(ctx, r.client, "/categorias", nil, &cats); err != nil {
			return nil, err
		}
		return cats, nil
	})
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (models.Category, bool) {
	return guardFound(ctx, r.log, "categories.getById", func() (models.Category, error) {
		var cat models.Category
		err := client.GetJSON(ctx, r.client, fmt.Sprintf("/categorias/%d", id), nil, &cat)
		return cat, err
	})
}

func (r *CategoryRepository) Create(ctx context.Context, cat models.Category) bool {
	return guardOK(ctx, r.log, "categories.create", func() error {
		return client.PostJSON(ctx, r.client, "/categorias", cat, nil)
	})
}

func (r *CategoryRepository) Update(ctx context.Context, cat models.Category) bool {
	return guardOK(ctx, r.log, "categories.update", func() error {
		return client.PutJSON(ctx, r.client, fmt.Sprintf("/categorias/%d", cat.ID), cat)
	})
}

// Delete removes a category. Repeated deletes of the same id report false,
// they never raise.
func (r *CategoryRepository) Delete(ctx context.Context, id int) bool {
	return guardOK(ctx, r.log, "categories.delete", func() error {
		return client.Delete(ctx, r.client, fmt.Sprintf("/categorias/%d", id))
	})
}
