package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/Nic0aranda/PokeShop-sub000/client"
	"github.com/Nic0aranda/PokeShop-sub000/models"
)

// ProductRepository exposes the /productos resource family, including the
// stock-delta and image attachment operations.
type ProductRepository struct {
	client client.Doer
	log    *zap.Logger
}

func NewProductRepository(c client.Doer, log *zap.Logger) *ProductRepository {
	return &ProductRepository{client: c, log: log}
}

func (r *ProductRepository) List(ctx context.Context) []models.Product {
	return r.list(ctx, nil)
}

// ListByCategory filters the catalog server-side by category id.
func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID int) []models.Product {
	q := url.Values{}
	q.Set("categoria", strconv.Itoa(categoryID))
	return r.list(ctx, q)
}

func (r *ProductRepository) list(ctx context.Context, query url.Values) []models.Product {
	return guard(ctx, r.log, "products.list", []models.Product{}, func() ([]models.Product, error) {
		var products []models.Product
		if err := client.GetJSON(ctx, r.client, "/productos", query, &products); err != nil {
			return nil, err
		}
		return products, nil
	})
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (models.Product, bool) {
	return guardFound(ctx, r.log, "products.getById", func() (models.Product, error) {
		var product models.Product
		err := client.GetJSON(ctx, r.client, fmt.Sprintf("/productos/%d", id), nil, &product)
		return product, err
	})
}

func (r *ProductRepository) Create(ctx context.Context, product models.Product) bool {
	return guardOK(ctx, r.log, "products.create", func() error {
		return client.PostJSON(ctx, r.client, "/productos", product, nil)
	})
}

func (r *ProductRepository) Update(ctx context.Context, product models.Product) bool {
	return guardOK(ctx, r.log, "products.update", func() error {
		return client.PutJSON(ctx, r.client, fmt.Sprintf("/productos/%d", product.ID), product)
	})
}

// DecreaseStock submits a stock delta. The backend owns stock truth; this
// only requests the adjustment.
func (r *ProductRepository) DecreaseStock(ctx context.Context, id, quantity int) bool {
	return guardOK(ctx, r.log, "products.decreaseStock", func() error {
		body := map[string]int{"cantidad": quantity}
		return client.PutJSON(ctx, r.client, fmt.Sprintf("/productos/%d/stock", id), body)
	})
}

// Delete removes a product. Repeated deletes report false, they never raise.
func (r *ProductRepository) Delete(ctx context.Context, id int) bool {
	return guardOK(ctx, r.log, "products.delete", func() error {
		return client.Delete(ctx, r.client, fmt.Sprintf("/productos/%d", id))
	})
}

func (r *ProductRepository) ListImages(ctx context.Context, productID int) []models.ProductImage {
	return guard(ctx, r.log, "products.listImages", []models.ProductImage{}, func() ([]models.ProductImage, error) {
		var images []models.ProductImage
		err := client.GetJSON(ctx, r.client, fmt.Sprintf("/productos/%d/imagenes", productID), nil, &images)
		if err != nil {
			return nil, err
		}
		return images, nil
	})
}

// UploadImages attaches a batch of base64-encoded images to a product.
func (r *ProductRepository) UploadImages(ctx context.Context, productID int, images []string) bool {
	return guardOK(ctx, r.log, "products.uploadImages", func() error {
		body := map[string][]string{"imagenes": images}
		return client.PostJSON(ctx, r.client, fmt.Sprintf("/productos/%d/imagenes", productID), body, nil)
	})
}

func (r *ProductRepository) DeleteImage(ctx context.Context, imageID int) bool {
	return guardOK(ctx, r.log, "products.deleteImage", func() error {
		return client.Delete(ctx, r.client, fmt.Sprintf("/productos/imagenes/%d", imageID))
	})
}
