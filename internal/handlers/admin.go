package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"printshop-storefront/internal/api"
	"printshop-storefront/internal/middleware"
	"printshop-storefront/internal/models"
	"printshop-storefront/internal/services"
)

// AdminHandler exposes the admin panel endpoints. Every request runs
// behind the admin gate, and the caller's token travels to the store API
// which makes the final call on permissions.
type AdminHandler struct {
	adminService services.AdminServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService services.AdminServiceInterface) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Dashboard returns the aggregate store counters
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.Stats(r.Context(), middleware.GetTokenFromContext(r.Context()))
	if err != nil {
		respondUpstreamError(w, err, "failed to load stats")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// ListProducts lists every product, including inactive ones
func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.adminService.Products(r.Context(), middleware.GetTokenFromContext(r.Context()))
	if err != nil {
		respondUpstreamError(w, err, "failed to load products")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// CreateProduct creates a product
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input api.ProductInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.adminService.CreateProduct(r.Context(), middleware.GetTokenFromContext(r.Context()), input)
	if err != nil {
		respondUpstreamError(w, err, "failed to create product")
		return
	}
	respondJSON(w, http.StatusCreated, product)
}

// UpdateProduct updates a product; omitted fields stay unchanged
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var input api.ProductInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.adminService.UpdateProduct(r.Context(), middleware.GetTokenFromContext(r.Context()), chi.URLParam(r, "id"), input)
	if err != nil {
		respondUpstreamError(w, err, "failed to update product")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// DeleteProduct deletes a product
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.DeleteProduct(r.Context(), middleware.GetTokenFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		respondUpstreamError(w, err, "failed to delete product")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListCategories lists every category, including inactive ones
func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.adminService.Categories(r.Context(), middleware.GetTokenFromContext(r.Context()))
	if err != nil {
		respondUpstreamError(w, err, "failed to load categories")
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

// CreateCategory creates a category
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var input api.CategoryInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.adminService.CreateCategory(r.Context(), middleware.GetTokenFromContext(r.Context()), input)
	if err != nil {
		respondUpstreamError(w, err, "failed to create category")
		return
	}
	respondJSON(w, http.StatusCreated, category)
}

// UpdateCategory updates a category
func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var input api.CategoryInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.adminService.UpdateCategory(r.Context(), middleware.GetTokenFromContext(r.Context()), chi.URLParam(r, "id"), input)
	if err != nil {
		respondUpstreamError(w, err, "failed to update category")
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// DeleteCategory deletes a category. A category that still has products
// assigned is reported with a conflict, not deleted.
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	err := h.adminService.DeleteCategory(r.Context(), middleware.GetTokenFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, models.ErrCategoryInUse) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondUpstreamError(w, err, "failed to delete category")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListBanners lists every banner, including inactive ones
func (h *AdminHandler) ListBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.adminService.Banners(r.Context(), middleware.GetTokenFromContext(r.Context()))
	if err != nil {
		respondUpstreamError(w, err, "failed to load banners")
		return
	}
	respondJSON(w, http.StatusOK, banners)
}

// CreateBanner creates a banner
func (h *AdminHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var input api.BannerInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	banner, err := h.adminService.CreateBanner(r.Context(), middleware.GetTokenFromContext(r.Context()), input)
	if err != nil {
		respondUpstreamError(w, err, "failed to create banner")
		return
	}
	respondJSON(w, http.StatusCreated, banner)
}

// UpdateBanner updates a banner
func (h *AdminHandler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	var input api.BannerInput
	if err := decodeJSON(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	banner, err := h.adminService.UpdateBanner(r.Context(), middleware.GetTokenFromContext(r.Context()), chi.URLParam(r, "id"), input)
	if err != nil {
		respondUpstreamError(w, err, "failed to update banner")
		return
	}
	respondJSON(w, http.StatusOK, banner)
}

// DeleteBanner deletes a banner
func (h *AdminHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.DeleteBanner(r.Context(), middleware.GetTokenFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		respondUpstreamError(w, err, "failed to delete banner")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListOrders lists placed orders
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.adminService.Orders(r.Context(), middleware.GetTokenFromContext(r.Context()))
	if err != nil {
		respondUpstreamError(w, err, "failed to load orders")
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// UpdateOrderStatus moves an order through its lifecycle
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status models.OrderStatus `json:"estado"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Status.IsValid() {
		respondError(w, http.StatusBadRequest, "unknown order status")
		return
	}

	order, err := h.adminService.UpdateOrderStatus(r.Context(), middleware.GetTokenFromContext(r.Context()), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		respondUpstreamError(w, err, "failed to update order")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// GetConfig returns the full key-value site configuration
func (h *AdminHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	entries, err := h.adminService.Config(r.Context(), middleware.GetTokenFromContext(r.Context()))
	if err != nil {
		respondUpstreamError(w, err, "failed to load config")
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// UpdateConfig replaces the key-value site configuration
func (h *AdminHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Configs []models.ConfigEntry `json:"configs"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.adminService.UpdateConfig(r.Context(), middleware.GetTokenFromContext(r.Context()), req.Configs); err != nil {
		respondUpstreamError(w, err, "failed to update config")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
