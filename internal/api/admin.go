package api

import (
	"context"
	"net/url"

	"printshop-storefront/internal/models"
)

// ProductInput is the admin create/update payload for a product.
// Pointer fields are omitted when nil, so toggles can be sent alone.
type ProductInput struct {
	Name        string   `json:"nombre,omitempty"`
	Slug        string   `json:"slug,omitempty"`
	Description string   `json:"descripcion,omitempty"`
	Price       *int     `json:"precio,omitempty"`
	Images      []string `json:"imagenes,omitempty"`
	CategoryID  string   `json:"categoriaId,omitempty"`
	Variants    []string `json:"variantes,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Featured    *bool    `json:"destacado,omitempty"`
	Active      *bool    `json:"activo,omitempty"`
}

// CategoryInput is the admin create/update payload for a category
type CategoryInput struct {
	Name   string `json:"nombre,omitempty"`
	Slug   string `json:"slug,omitempty"`
	Active *bool  `json:"activo,omitempty"`
}

// BannerInput is the admin create/update payload for a banner
type BannerInput struct {
	Title    string `json:"titulo,omitempty"`
	Subtitle string `json:"subtitulo,omitempty"`
	Image    string `json:"imagen,omitempty"`
	Link     string `json:"link,omitempty"`
	Position *int   `json:"orden,omitempty"`
	Active   *bool  `json:"activo,omitempty"`
}

// AdminProducts lists every product, including inactive ones
func (c *Client) AdminProducts(ctx context.Context, token string) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, "/admin/productos", token, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// AdminCreateProduct creates a product
func (c *Client) AdminCreateProduct(ctx context.Context, token string, input ProductInput) (*models.Product, error) {
	var product models.Product
	if err := c.post(ctx, "/admin/productos", token, input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// AdminUpdateProduct updates a product; omitted fields are left unchanged
func (c *Client) AdminUpdateProduct(ctx context.Context, token, id string, input ProductInput) (*models.Product, error) {
	var product models.Product
	if err := c.put(ctx, "/admin/productos/"+url.PathEscape(id), token, input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// AdminDeleteProduct deletes a product
func (c *Client) AdminDeleteProduct(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/admin/productos/"+url.PathEscape(id), token)
}

// AdminCategories lists every category, including inactive ones
func (c *Client) AdminCategories(ctx context.Context, token string) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, "/admin/categorias", token, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// AdminCreateCategory creates a category
func (c *Client) AdminCreateCategory(ctx context.Context, token string, input CategoryInput) (*models.Category, error) {
	var category models.Category
	if err := c.post(ctx, "/admin/categorias", token, input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// AdminUpdateCategory updates a category
func (c *Client) AdminUpdateCategory(ctx context.Context, token, id string, input CategoryInput) (*models.Category, error) {
	var category models.Category
	if err := c.put(ctx, "/admin/categorias/"+url.PathEscape(id), token, input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// AdminDeleteCategory deletes a category. The store API rejects the
// delete when products still reference the category.
func (c *Client) AdminDeleteCategory(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/admin/categorias/"+url.PathEscape(id), token)
}

// AdminBanners lists every banner, including inactive ones
func (c *Client) AdminBanners(ctx context.Context, token string) ([]models.Banner, error) {
	var banners []models.Banner
	if err := c.get(ctx, "/admin/banners", token, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

// AdminCreateBanner creates a banner
func (c *Client) AdminCreateBanner(ctx context.Context, token string, input BannerInput) (*models.Banner, error) {
	var banner models.Banner
	if err := c.post(ctx, "/admin/banners", token, input, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

// AdminUpdateBanner updates a banner
func (c *Client) AdminUpdateBanner(ctx context.Context, token, id string, input BannerInput) (*models.Banner, error) {
	var banner models.Banner
	if err := c.put(ctx, "/admin/banners/"+url.PathEscape(id), token, input, &banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

// AdminDeleteBanner deletes a banner
func (c *Client) AdminDeleteBanner(ctx context.Context, token, id string) error {
	return c.delete(ctx, "/admin/banners/"+url.PathEscape(id), token)
}

// AdminOrders lists placed orders
func (c *Client) AdminOrders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.get(ctx, "/admin/pedidos", token, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// orderStatusUpdate is the wire payload for an order status change
type orderStatusUpdate struct {
	Status models.OrderStatus `json:"estado"`
}

// AdminUpdateOrderStatus moves an order to a new lifecycle state
func (c *Client) AdminUpdateOrderStatus(ctx context.Context, token, id string, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	if err := c.put(ctx, "/admin/pedidos/"+url.PathEscape(id), token, orderStatusUpdate{Status: status}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// AdminConfig fetches the full key-value configuration
func (c *Client) AdminConfig(ctx context.Context, token string) ([]models.ConfigEntry, error) {
	var entries []models.ConfigEntry
	if err := c.get(ctx, "/admin/config", token, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// configUpdate is the wire payload for a bulk configuration update
type configUpdate struct {
	Configs []models.ConfigEntry `json:"configs"`
}

// AdminUpdateConfig replaces the key-value configuration entries
func (c *Client) AdminUpdateConfig(ctx context.Context, token string, entries []models.ConfigEntry) error {
	return c.put(ctx, "/admin/config", token, configUpdate{Configs: entries}, nil)
}

// AdminStats fetches the aggregate dashboard counters
func (c *Client) AdminStats(ctx context.Context, token string) (*models.StoreStats, error) {
	var stats models.StoreStats
	if err := c.get(ctx, "/admin/stats", token, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
