package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"printshop-storefront/internal/api"
	"printshop-storefront/internal/models"
)

// AdminService proxies the admin panel operations to the store API. The
// caller's token travels with every request; the store API enforces the
// actual permissions.
type AdminService struct {
	api *api.Client
}

// NewAdminService creates a new admin service
func NewAdminService(apiClient *api.Client) *AdminService {
	return &AdminService{api: apiClient}
}

// Stats fetches the dashboard counters
func (s *AdminService) Stats(ctx context.Context, token string) (*models.StoreStats, error) {
	return s.api.AdminStats(ctx, token)
}

// Products lists every product, including inactive ones
func (s *AdminService) Products(ctx context.Context, token string) ([]models.Product, error) {
	return s.api.AdminProducts(ctx, token)
}

// CreateProduct creates a product
func (s *AdminService) CreateProduct(ctx context.Context, token string, input api.ProductInput) (*models.Product, error) {
	return s.api.AdminCreateProduct(ctx, token, input)
}

// UpdateProduct updates a product
func (s *AdminService) UpdateProduct(ctx context.Context, token, id string, input api.ProductInput) (*models.Product, error) {
	return s.api.AdminUpdateProduct(ctx, token, id, input)
}

// DeleteProduct deletes a product
func (s *AdminService) DeleteProduct(ctx context.Context, token, id string) error {
	return s.api.AdminDeleteProduct(ctx, token, id)
}

// Categories lists every category, including inactive ones
func (s *AdminService) Categories(ctx context.Context, token string) ([]models.Category, error) {
	return s.api.AdminCategories(ctx, token)
}

// CreateCategory creates a category
func (s *AdminService) CreateCategory(ctx context.Context, token string, input api.CategoryInput) (*models.Category, error) {
	return s.api.AdminCreateCategory(ctx, token, input)
}

// UpdateCategory updates a category
func (s *AdminService) UpdateCategory(ctx context.Context, token, id string, input api.CategoryInput) (*models.Category, error) {
	return s.api.AdminUpdateCategory(ctx, token, id, input)
}

// DeleteCategory deletes a category. A conflict from the store API means
// products still reference it, which is surfaced as a fixed warning.
func (s *AdminService) DeleteCategory(ctx context.Context, token, id string) error {
	err := s.api.AdminDeleteCategory(ctx, token, id)
	if err == nil {
		return nil
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
		return models.ErrCategoryInUse
	}
	return err
}

// Banners lists every banner, including inactive ones
func (s *AdminService) Banners(ctx context.Context, token string) ([]models.Banner, error) {
	return s.api.AdminBanners(ctx, token)
}

// CreateBanner creates a banner
func (s *AdminService) CreateBanner(ctx context.Context, token string, input api.BannerInput) (*models.Banner, error) {
	return s.api.AdminCreateBanner(ctx, token, input)
}

// UpdateBanner updates a banner
func (s *AdminService) UpdateBanner(ctx context.Context, token, id string, input api.BannerInput) (*models.Banner, error) {
	return s.api.AdminUpdateBanner(ctx, token, id, input)
}

// DeleteBanner deletes a banner
func (s *AdminService) DeleteBanner(ctx context.Context, token, id string) error {
	return s.api.AdminDeleteBanner(ctx, token, id)
}

// Orders lists placed orders
func (s *AdminService) Orders(ctx context.Context, token string) ([]models.Order, error) {
	return s.api.AdminOrders(ctx, token)
}

// UpdateOrderStatus moves an order to a new lifecycle state
func (s *AdminService) UpdateOrderStatus(ctx context.Context, token, id string, status models.OrderStatus) (*models.Order, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown order status %q", status)
	}
	return s.api.AdminUpdateOrderStatus(ctx, token, id, status)
}

// Config fetches the full key-value configuration
func (s *AdminService) Config(ctx context.Context, token string) ([]models.ConfigEntry, error) {
	return s.api.AdminConfig(ctx, token)
}

// UpdateConfig replaces the key-value configuration entries
func (s *AdminService) UpdateConfig(ctx context.Context, token string, entries []models.ConfigEntry) error {
	return s.api.AdminUpdateConfig(ctx, token, entries)
}
