package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"printshop-storefront/internal/api"
	"printshop-storefront/internal/models"
	"printshop-storefront/internal/services"
)

const featuredHomeLimit = 8

// PublicHandler serves the storefront pages: home, catalog browsing and
// site info. Everything here is readable without an account.
type PublicHandler struct {
	catalogService  services.CatalogServiceInterface
	settingsService services.SettingsServiceInterface
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(catalogService services.CatalogServiceInterface, settingsService services.SettingsServiceInterface) *PublicHandler {
	return &PublicHandler{
		catalogService:  catalogService,
		settingsService: settingsService,
	}
}

// Home assembles the landing page: banner carousel, featured products and
// store contact info. Each section degrades independently so one failed
// upstream call never blanks the whole page.
func (h *PublicHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	banners, err := h.catalogService.Banners(ctx)
	if err != nil {
		log.Printf("Failed to load banners: %v", err)
		banners = []models.Banner{}
	}

	featured, err := h.catalogService.FeaturedProducts(ctx, featuredHomeLimit)
	if err != nil {
		log.Printf("Failed to load featured products: %v", err)
		featured = []models.Product{}
	}

	settings, err := h.settingsService.SiteSettings(ctx)
	if err != nil {
		log.Printf("Failed to load site settings: %v", err)
		settings = models.SettingsFromEntries(nil)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"banners":  banners,
		"featured": featured,
		"store":    storeInfo(settings),
	})
}

// Store returns the catalog listing, optionally narrowed to a category
// or to featured products only
func (h *PublicHandler) Store(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.catalogService.Categories(ctx)
	if err != nil {
		respondUpstreamError(w, err, "failed to load categories")
		return
	}

	filter := api.ProductFilter{
		CategorySlug: r.URL.Query().Get("category"),
		Featured:     r.URL.Query().Get("featured") == "true",
	}
	products, err := h.catalogService.Products(ctx, filter)
	if err != nil {
		respondUpstreamError(w, err, "failed to load products")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
		"products":   products,
	})
}

// Product returns a single product page by slug
func (h *PublicHandler) Product(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		respondError(w, http.StatusBadRequest, "product slug is required")
		return
	}

	product, err := h.catalogService.ProductBySlug(r.Context(), slug)
	if err != nil {
		respondUpstreamError(w, err, "failed to load product")
		return
	}
	if !product.Active {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// SiteInfo returns the store contact block used by the footer and the
// contact page
func (h *PublicHandler) SiteInfo(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.SiteSettings(r.Context())
	if err != nil {
		respondUpstreamError(w, err, "failed to load site settings")
		return
	}
	respondJSON(w, http.StatusOK, storeInfo(settings))
}

// Health reports service liveness
func (h *PublicHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "printshop-storefront",
	})
}

// storeInfo renders the contact block with ready-to-use deep links
func storeInfo(settings *models.SiteSettings) map[string]interface{} {
	info := map[string]interface{}{
		"name":         settings.StoreName,
		"whatsapp_url": services.ContactWhatsAppLink(settings.WhatsApp),
		"email":        settings.ContactEmail,
		"location":     settings.Location,
	}
	if settings.ContactPhone != "" {
		info["phone_url"] = services.PhoneLink(settings.ContactPhone)
	}
	return info
}
