package services

import (
	"context"

	"printshop-storefront/internal/api"
	"printshop-storefront/internal/models"
)

// AuthServiceInterface defines the interface for authentication services
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Register(ctx context.Context, name, email, password, phone string) (string, *models.User, error)
	ResolveToken(ctx context.Context, token string) (*models.User, error)
}

// CatalogServiceInterface defines the interface for catalog services
type CatalogServiceInterface interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Products(ctx context.Context, filter api.ProductFilter) ([]models.Product, error)
	FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error)
	ProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	Banners(ctx context.Context) ([]models.Banner, error)
}

// SettingsServiceInterface defines the interface for site settings services
type SettingsServiceInterface interface {
	SiteSettings(ctx context.Context) (*models.SiteSettings, error)
}

// CheckoutServiceInterface defines the interface for checkout services
type CheckoutServiceInterface interface {
	Submit(ctx context.Context, state *models.CheckoutState, cart *models.Cart) (*CheckoutResult, error)
	Confirmation(ctx context.Context, orderID string, orderNumber int) (*OrderConfirmationView, error)
	PaymentStatus(ctx context.Context, orderID string) (*api.PaymentState, error)
}

// AdminServiceInterface defines the interface for the admin panel services
type AdminServiceInterface interface {
	Stats(ctx context.Context, token string) (*models.StoreStats, error)

	Products(ctx context.Context, token string) ([]models.Product, error)
	CreateProduct(ctx context.Context, token string, input api.ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, token, id string, input api.ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error

	Categories(ctx context.Context, token string) ([]models.Category, error)
	CreateCategory(ctx context.Context, token string, input api.CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, token, id string, input api.CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, token, id string) error

	Banners(ctx context.Context, token string) ([]models.Banner, error)
	CreateBanner(ctx context.Context, token string, input api.BannerInput) (*models.Banner, error)
	UpdateBanner(ctx context.Context, token, id string, input api.BannerInput) (*models.Banner, error)
	DeleteBanner(ctx context.Context, token, id string) error

	Orders(ctx context.Context, token string) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, token, id string, status models.OrderStatus) (*models.Order, error)

	Config(ctx context.Context, token string) ([]models.ConfigEntry, error)
	UpdateConfig(ctx context.Context, token string, entries []models.ConfigEntry) error
}
