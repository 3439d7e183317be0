package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/sessions"

	"printshop-storefront/internal/middleware"
	"printshop-storefront/internal/models"
	"printshop-storefront/internal/services"
)

// CartHandler manages the session-backed shopping cart
type CartHandler struct {
	catalogService services.CatalogServiceInterface
	store          sessions.Store
}

// NewCartHandler creates a new cart handler
func NewCartHandler(catalogService services.CatalogServiceInterface, store sessions.Store) *CartHandler {
	return &CartHandler{
		catalogService: catalogService,
		store:          store,
	}
}

// cartFromSession decodes the cart stored in the session. A missing or
// corrupt value yields a fresh empty cart.
func cartFromSession(session *sessions.Session) *models.Cart {
	cart := &models.Cart{}
	raw, ok := session.Values[middleware.SessionKeyCart].(string)
	if !ok || raw == "" {
		return cart
	}
	if err := json.Unmarshal([]byte(raw), cart); err != nil {
		log.Printf("Discarding unreadable session cart: %v", err)
		return &models.Cart{}
	}
	return cart
}

// saveCart serializes the cart back into the session and persists the cookie
func saveCart(w http.ResponseWriter, r *http.Request, session *sessions.Session, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	session.Values[middleware.SessionKeyCart] = string(data)
	return session.Save(r, w)
}

// cartPayload is the cart as rendered to the client, with derived totals
func cartPayload(cart *models.Cart) map[string]interface{} {
	lines := cart.Lines
	if lines == nil {
		lines = []models.CartLine{}
	}
	return map[string]interface{}{
		"lines":          lines,
		"open":           cart.Open,
		"total_quantity": cart.TotalQuantity(),
		"total_amount":   cart.TotalAmount(),
	}
}

// ViewCart returns the current cart contents
func (h *CartHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "session error")
		return
	}
	respondJSON(w, http.StatusOK, cartPayload(cartFromSession(session)))
}

// AddToCart adds a product to the cart. The product is looked up on the
// store API so the line always carries the server-side price and image,
// never values supplied by the client.
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Slug     string `json:"slug"`
		Variant  string `json:"variant"`
		Quantity int    `json:"quantity"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Slug == "" {
		respondError(w, http.StatusBadRequest, "product slug is required")
		return
	}

	product, err := h.catalogService.ProductBySlug(r.Context(), req.Slug)
	if err != nil {
		respondUpstreamError(w, err, "failed to load product")
		return
	}
	if !product.Active {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	if !product.HasVariant(req.Variant) {
		respondError(w, http.StatusBadRequest, "unknown product variant")
		return
	}

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "session error")
		return
	}

	cart := cartFromSession(session)
	cart.AddLine(models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  req.Quantity,
		Variant:   req.Variant,
		Image:     product.MainImage(),
	})

	if err := saveCart(w, r, session, cart); err != nil {
		log.Printf("Failed to save cart: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}
	respondJSON(w, http.StatusOK, cartPayload(cart))
}

// UpdateCartLine sets the quantity of an existing line. Zero or negative
// quantities remove the line.
func (h *CartHandler) UpdateCartLine(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
		Variant   string `json:"variant"`
		Quantity  int    `json:"quantity"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "product_id is required")
		return
	}

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "session error")
		return
	}

	cart := cartFromSession(session)
	cart.SetQuantity(req.ProductID, req.Quantity, req.Variant)

	if err := saveCart(w, r, session, cart); err != nil {
		log.Printf("Failed to save cart: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}
	respondJSON(w, http.StatusOK, cartPayload(cart))
}

// RemoveCartLine drops a line from the cart
func (h *CartHandler) RemoveCartLine(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
		Variant   string `json:"variant"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "session error")
		return
	}

	cart := cartFromSession(session)
	cart.RemoveLine(req.ProductID, req.Variant)

	if err := saveCart(w, r, session, cart); err != nil {
		log.Printf("Failed to save cart: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}
	respondJSON(w, http.StatusOK, cartPayload(cart))
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "session error")
		return
	}

	cart := cartFromSession(session)
	cart.Clear()

	if err := saveCart(w, r, session, cart); err != nil {
		log.Printf("Failed to save cart: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}
	respondJSON(w, http.StatusOK, cartPayload(cart))
}

// OpenCart marks the cart drawer as visible
func (h *CartHandler) OpenCart(w http.ResponseWriter, r *http.Request) {
	h.setDrawer(w, r, true)
}

// CloseCart marks the cart drawer as hidden
func (h *CartHandler) CloseCart(w http.ResponseWriter, r *http.Request) {
	h.setDrawer(w, r, false)
}

func (h *CartHandler) setDrawer(w http.ResponseWriter, r *http.Request, open bool) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "session error")
		return
	}

	cart := cartFromSession(session)
	cart.Open = open

	if err := saveCart(w, r, session, cart); err != nil {
		log.Printf("Failed to save cart: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}
	respondJSON(w, http.StatusOK, cartPayload(cart))
}
