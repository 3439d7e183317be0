package services

import (
	"context"
	"sort"

	"printshop-storefront/internal/api"
	"printshop-storefront/internal/models"
)

// CatalogService serves the public catalog. It filters out inactive
// entities so storefront pages never see drafts.
type CatalogService struct {
	api *api.Client
}

// NewCatalogService creates a new catalog service
func NewCatalogService(apiClient *api.Client) *CatalogService {
	return &CatalogService{api: apiClient}
}

// Categories returns the active categories
func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.api.Categories(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]models.Category, 0, len(categories))
	for _, category := range categories {
		if category.Active {
			active = append(active, category)
		}
	}
	return active, nil
}

// Products returns the active products matching the filter
func (s *CatalogService) Products(ctx context.Context, filter api.ProductFilter) ([]models.Product, error) {
	products, err := s.api.Products(ctx, filter)
	if err != nil {
		return nil, err
	}

	active := make([]models.Product, 0, len(products))
	for _, product := range products {
		if product.Active {
			active = append(active, product)
		}
	}
	return active, nil
}

// FeaturedProducts returns up to limit featured products for the home page
func (s *CatalogService) FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	products, err := s.Products(ctx, api.ProductFilter{Featured: true})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}

// ProductBySlug returns one active product by its URL slug
func (s *CatalogService) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.api.ProductBySlug(ctx, slug)
}

// Banners returns the active banners ordered by position
func (s *CatalogService) Banners(ctx context.Context) ([]models.Banner, error) {
	banners, err := s.api.Banners(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]models.Banner, 0, len(banners))
	for _, banner := range banners {
		if banner.Active {
			active = append(active, banner)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Position < active[j].Position
	})
	return active, nil
}
