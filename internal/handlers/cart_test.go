package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"printshop-storefront/internal/api"
	"printshop-storefront/internal/models"
	"printshop-storefront/internal/services"
)

func newCartTestHandler() (*CartHandler, *services.MockCatalogService, sessions.Store) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	catalog := new(services.MockCatalogService)
	return NewCartHandler(catalog, store), catalog, store
}

// do runs a handler and carries the session cookies from a previous response
func doCart(h http.HandlerFunc, method, target, body string, prev *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if prev != nil {
		for _, cookie := range prev.Result().Cookies() {
			req.AddCookie(cookie)
		}
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestAddToCartMergesAcrossRequests(t *testing.T) {
	h, catalog, _ := newCartTestHandler()
	catalog.On("ProductBySlug", mock.Anything, "maceta").Return(&models.Product{
		ID:     "p1",
		Name:   "Maceta",
		Slug:   "maceta",
		Price:  1000,
		Images: []string{"/img/maceta.webp"},
		Active: true,
	}, nil)

	first := doCart(h.AddToCart, http.MethodPost, "/api/cart/add", `{"slug":"maceta","quantity":1}`, nil)
	require.Equal(t, http.StatusOK, first.Code)

	second := doCart(h.AddToCart, http.MethodPost, "/api/cart/add", `{"slug":"maceta","quantity":2}`, first)
	require.Equal(t, http.StatusOK, second.Code)

	body := decodeBody(t, second)
	assert.Equal(t, float64(3), body["total_quantity"])
	assert.Equal(t, float64(3000), body["total_amount"])
	assert.Equal(t, true, body["open"])

	lines, ok := body["lines"].([]interface{})
	require.True(t, ok)
	assert.Len(t, lines, 1, "same product and variant merges into one line")
}

func TestAddToCartUsesServerSidePrice(t *testing.T) {
	h, catalog, _ := newCartTestHandler()
	catalog.On("ProductBySlug", mock.Anything, "maceta").Return(&models.Product{
		ID: "p1", Name: "Maceta", Slug: "maceta", Price: 2500, Active: true,
	}, nil)

	// The request carries no price; the line must come from the catalog
	rec := doCart(h.AddToCart, http.MethodPost, "/api/cart/add", `{"slug":"maceta"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(2500), body["total_amount"])
	assert.Equal(t, float64(1), body["total_quantity"], "missing quantity defaults to one")
}

func TestAddToCartUnknownVariant(t *testing.T) {
	h, catalog, _ := newCartTestHandler()
	catalog.On("ProductBySlug", mock.Anything, "mate").Return(&models.Product{
		ID: "p1", Slug: "mate", Price: 1000, Active: true, Variants: []string{"Rojo", "Azul"},
	}, nil)

	rec := doCart(h.AddToCart, http.MethodPost, "/api/cart/add", `{"slug":"mate","variant":"Violeta"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddToCartInactiveProduct(t *testing.T) {
	h, catalog, _ := newCartTestHandler()
	catalog.On("ProductBySlug", mock.Anything, "borrador").Return(&models.Product{
		ID: "p9", Slug: "borrador", Active: false,
	}, nil)

	rec := doCart(h.AddToCart, http.MethodPost, "/api/cart/add", `{"slug":"borrador"}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddToCartMissingProduct(t *testing.T) {
	h, catalog, _ := newCartTestHandler()
	catalog.On("ProductBySlug", mock.Anything, "nada").Return(nil, &api.Error{
		StatusCode: http.StatusNotFound,
		Message:    "producto no encontrado",
	})

	rec := doCart(h.AddToCart, http.MethodPost, "/api/cart/add", `{"slug":"nada"}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "producto no encontrado", body["error"])
}

func TestUpdateCartLineToZeroRemoves(t *testing.T) {
	h, catalog, _ := newCartTestHandler()
	catalog.On("ProductBySlug", mock.Anything, "maceta").Return(&models.Product{
		ID: "p1", Slug: "maceta", Price: 1000, Active: true,
	}, nil)

	added := doCart(h.AddToCart, http.MethodPost, "/api/cart/add", `{"slug":"maceta"}`, nil)
	require.Equal(t, http.StatusOK, added.Code)

	rec := doCart(h.UpdateCartLine, http.MethodPost, "/api/cart/update", `{"product_id":"p1","quantity":0}`, added)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(0), body["total_quantity"])
	lines, _ := body["lines"].([]interface{})
	assert.Empty(t, lines)
}

func TestClearCart(t *testing.T) {
	h, catalog, _ := newCartTestHandler()
	catalog.On("ProductBySlug", mock.Anything, "maceta").Return(&models.Product{
		ID: "p1", Slug: "maceta", Price: 1000, Active: true,
	}, nil)

	added := doCart(h.AddToCart, http.MethodPost, "/api/cart/add", `{"slug":"maceta","quantity":4}`, nil)

	rec := doCart(h.ClearCart, http.MethodPost, "/api/cart/clear", "", added)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(0), body["total_amount"])
}

func TestViewCartStartsEmpty(t *testing.T) {
	h, _, _ := newCartTestHandler()

	rec := doCart(h.ViewCart, http.MethodGet, "/api/cart", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(0), body["total_quantity"])
	assert.Equal(t, false, body["open"])
}

func TestCartDrawerToggle(t *testing.T) {
	h, catalog, _ := newCartTestHandler()
	catalog.On("ProductBySlug", mock.Anything, "maceta").Return(&models.Product{
		ID: "p1", Slug: "maceta", Price: 1000, Active: true,
	}, nil)

	added := doCart(h.AddToCart, http.MethodPost, "/api/cart/add", `{"slug":"maceta"}`, nil)
	assert.Equal(t, true, decodeBody(t, added)["open"], "adding opens the drawer")

	closed := doCart(h.CloseCart, http.MethodPost, "/api/cart/close", "", added)
	assert.Equal(t, false, decodeBody(t, closed)["open"])

	opened := doCart(h.OpenCart, http.MethodPost, "/api/cart/open", "", closed)
	assert.Equal(t, true, decodeBody(t, opened)["open"])
}
