package api

import (
	"context"
	"net/url"

	"printshop-storefront/internal/models"
)

// ProductFilter narrows the public product listing
type ProductFilter struct {
	CategorySlug string
	Featured     bool
}

// Categories fetches the public category list
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, "/categorias", "", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Products fetches the public product list, optionally filtered by
// category slug and featured flag.
func (c *Client) Products(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	query := url.Values{}
	if filter.CategorySlug != "" {
		query.Set("categoria", filter.CategorySlug)
	}
	if filter.Featured {
		query.Set("destacado", "true")
	}

	path := "/productos"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var products []models.Product
	if err := c.get(ctx, path, "", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ProductBySlug fetches one product by its URL slug
func (c *Client) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := c.get(ctx, "/productos/slug/"+url.PathEscape(slug), "", &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Banners fetches the storefront banner list
func (c *Client) Banners(ctx context.Context) ([]models.Banner, error) {
	var banners []models.Banner
	if err := c.get(ctx, "/banners", "", &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

// SiteConfig fetches the public key-value site configuration
func (c *Client) SiteConfig(ctx context.Context) ([]models.ConfigEntry, error) {
	var entries []models.ConfigEntry
	if err := c.get(ctx, "/config", "", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
