package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the base URLs and tunables for every remote resource family.
// Each family may be served by a different host/port, so they are configured
// independently instead of sharing a single gateway URL.
type Config struct {
	Env string

	UsersBaseURL      string
	RolesBaseURL      string
	CategoriesBaseURL string
	ProductsBaseURL   string
	SalesBaseURL      string
	CurrencyBaseURL   string

	RedisURL string
	CartTTL  time.Duration

	HTTPTimeout time.Duration

	// SellerRoleID is the well-known role id that marks a user as seller/admin.
	SellerRoleID int
	// CurrencyFallbackRate is used for local conversion when the currency
	// service is unreachable.
	CurrencyFallbackRate float64
}

// Load reads configuration from the environment, with an optional .env file.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return Config{
		Env:               getEnv("APP_ENV", "development"),
		UsersBaseURL:      getEnv("USERS_BASE_URL", "http://localhost:8000"),
		RolesBaseURL:      getEnv("ROLES_BASE_URL", "http://localhost:8000"),
		CategoriesBaseURL: getEnv("CATEGORIES_BASE_URL", "http://localhost:8001"),
		ProductsBaseURL:   getEnv("PRODUCTS_BASE_URL", "http://localhost:8001"),
		SalesBaseURL:      getEnv("SALES_BASE_URL", "http://localhost:8002"),
		CurrencyBaseURL:   getEnv("CURRENCY_BASE_URL", "http://localhost:8003"),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
		CartTTL:  getDuration("CART_TTL", 24*time.Hour),

		HTTPTimeout: getDuration("HTTP_TIMEOUT", 10*time.Second),

		SellerRoleID:         getInt("SELLER_ROLE_ID", 1),
		CurrencyFallbackRate: getFloat("CURRENCY_FALLBACK_RATE", 980.0),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
