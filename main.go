package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Nic0aranda/PokeShop-sub000/cart"
	"github.com/Nic0aranda/PokeShop-sub000/client"
	"github.com/Nic0aranda/PokeShop-sub000/config"
	"github.com/Nic0aranda/PokeShop-sub000/database"
	"github.com/Nic0aranda/PokeShop-sub000/logger"
	"github.com/Nic0aranda/PokeShop-sub000/repository"
	"github.com/Nic0aranda/PokeShop-sub000/services"
)

// Demo wiring for the storefront core: builds every repository against the
// configured backends, prints the catalog, and walks one cart session. The
// real UI drives these same components.
func main() {
	cfg := config.Load()
	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	products := repository.NewProductRepository(
		client.NewBackendClient(cfg.ProductsBaseURL, cfg.HTTPTimeout), logger.Log)
	sales := repository.NewSaleRepository(
		client.NewBackendClient(cfg.SalesBaseURL, cfg.HTTPTimeout), logger.Log)
	currency := repository.NewCurrencyRepository(
		client.NewBackendClient(cfg.CurrencyBaseURL, cfg.HTTPTimeout), logger.Log)

	redisClient := database.NewRedisClient(cfg.RedisURL)
	store := repository.NewCartStore(redisClient, cfg.CartTTL, logger.Log)

	checkout := services.NewCheckoutService(sales, logger.Log)
	converter := services.NewCurrencyService(currency, cfg.CurrencyFallbackRate, logger.Log)

	ctx := logger.WithRequestID(context.Background(), uuid.NewString())

	rate := converter.GetReferenceRate(ctx)
	fmt.Printf("USD reference rate: %.2f\n", rate)

	catalog := products.List(ctx)
	fmt.Printf("Catalog (%d products):\n", len(catalog))
	for _, p := range catalog {
		fmt.Printf("  #%d %s: $%.2f USD (%.0f local), stock %d\n",
			p.ID, p.Name, p.Price, converter.Convert(ctx, p.Price), p.Stock)
	}
	if len(catalog) == 0 {
		return
	}

	const demoUserID = 1
	session := cart.New()
	session.Restore(store.Load(ctx, demoUserID))
	session.AddToCart(catalog[0])
	store.Save(ctx, demoUserID, session.Items())
	fmt.Printf("Cart total: %.2f\n", session.Total())

	result := checkout.Checkout(ctx, demoUserID, session.Items())
	fmt.Println(result.Message)
	if result.Success {
		session.Clear()
		store.Delete(ctx, demoUserID)
	}
}
