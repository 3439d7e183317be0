package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"printshop-storefront/internal/api"
	"printshop-storefront/internal/middleware"
	"printshop-storefront/internal/models"
	"printshop-storefront/internal/services"
)

// seedCheckoutSession builds session cookies carrying the given cart and
// wizard state, the way previous requests would have left them.
func seedCheckoutSession(t *testing.T, store sessions.Store, cart *models.Cart, state *models.CheckoutState) []*http.Cookie {
	t.Helper()

	seed := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	session, err := store.Get(seed, middleware.SessionName)
	require.NoError(t, err)

	if cart != nil {
		data, err := json.Marshal(cart)
		require.NoError(t, err)
		session.Values[middleware.SessionKeyCart] = string(data)
	}
	if state != nil {
		data, err := json.Marshal(state)
		require.NoError(t, err)
		session.Values[middleware.SessionKeyCheckout] = string(data)
	}

	require.NoError(t, session.Save(seed, rec))
	return rec.Result().Cookies()
}

func checkoutRequest(method, target, body string, cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	return req
}

func testCart() *models.Cart {
	cart := &models.Cart{}
	cart.AddLine(models.CartLine{ProductID: "p1", Name: "Maceta", UnitPrice: 2000, Quantity: 2})
	return cart
}

func paymentReadyState() *models.CheckoutState {
	state := models.NewCheckoutState()
	state.FirstName = "Ana"
	state.LastName = "García"
	state.Email = "ana@example.com"
	state.Phone = "1122334455"
	state.ShippingMethod = models.ShippingPostal
	state.Address = "Av. Siempreviva 742"
	state.City = "Rosario"
	state.Province = "Santa Fe"
	state.Step = models.StepPayment
	return state
}

func TestViewCheckoutRejectsEmptyCart(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	h := NewCheckoutHandler(new(services.MockCheckoutService), store)

	rec := httptest.NewRecorder()
	h.ViewCheckout(rec, httptest.NewRequest(http.MethodGet, "/api/checkout", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestViewCheckoutSummary(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	h := NewCheckoutHandler(new(services.MockCheckoutService), store)

	state := paymentReadyState()
	cookies := seedCheckoutSession(t, store, testCart(), state)

	rec := httptest.NewRecorder()
	h.ViewCheckout(rec, checkoutRequest(http.MethodGet, "/api/checkout", "", cookies))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(models.StepPayment), body["step"])
	assert.Equal(t, float64(4000), body["subtotal"])
	assert.Equal(t, float64(3500), body["shipping_cost"])
	assert.Equal(t, float64(7500), body["total"])
}

func TestSubmitContactAdvances(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	h := NewCheckoutHandler(new(services.MockCheckoutService), store)

	cookies := seedCheckoutSession(t, store, testCart(), nil)
	payload := `{"first_name":"Ana","last_name":"García","email":"ana@example.com","phone":"1122334455"}`

	rec := httptest.NewRecorder()
	h.SubmitContact(rec, checkoutRequest(http.MethodPost, "/api/checkout/contact", payload, cookies))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(models.StepShipping), body["step"])
}

func TestSubmitContactValidationErrors(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	h := NewCheckoutHandler(new(services.MockCheckoutService), store)

	cookies := seedCheckoutSession(t, store, testCart(), nil)

	rec := httptest.NewRecorder()
	h.SubmitContact(rec, checkoutRequest(http.MethodPost, "/api/checkout/contact", `{"email":"bad"}`, cookies))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody(t, rec)
	fields, ok := body["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "email")
}

func TestSubmitShippingRequiresContactFirst(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	h := NewCheckoutHandler(new(services.MockCheckoutService), store)

	cookies := seedCheckoutSession(t, store, testCart(), nil)

	rec := httptest.NewRecorder()
	h.SubmitShipping(rec, checkoutRequest(http.MethodPost, "/api/checkout/shipping", `{"shipping_method":"RETIRO_LOCAL"}`, cookies))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSubmitPaymentBankTransfer(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	checkout := new(services.MockCheckoutService)
	checkout.On("Submit", mock.Anything, mock.Anything, mock.Anything).Return(&services.CheckoutResult{
		OrderID:     "o1",
		OrderNumber: 42,
		WhatsAppURL: "https://wa.me/5491122334455?text=pedido",
	}, nil)
	h := NewCheckoutHandler(checkout, store)

	cookies := seedCheckoutSession(t, store, testCart(), paymentReadyState())

	rec := httptest.NewRecorder()
	h.SubmitPayment(rec, checkoutRequest(http.MethodPost, "/api/checkout/payment", `{"payment_method":"TRANSFERENCIA"}`, cookies))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "o1", body["order_id"])
	assert.Equal(t, float64(42), body["order_number"])
	assert.Contains(t, body["whatsapp_url"], "wa.me")
	assert.NotContains(t, body, "redirect_url")

	// A successful order resets the session cart
	assert.NotEmpty(t, rec.Result().Cookies())
	checkout.AssertExpectations(t)
}

func TestSubmitPaymentGatewayRedirect(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	checkout := new(services.MockCheckoutService)
	checkout.On("Submit", mock.Anything, mock.Anything, mock.Anything).Return(&services.CheckoutResult{
		RedirectURL: "https://gateway.example/init/abc",
	}, nil)
	h := NewCheckoutHandler(checkout, store)

	cookies := seedCheckoutSession(t, store, testCart(), paymentReadyState())

	rec := httptest.NewRecorder()
	h.SubmitPayment(rec, checkoutRequest(http.MethodPost, "/api/checkout/payment", `{"payment_method":"MERCADOPAGO"}`, cookies))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "https://gateway.example/init/abc", body["redirect_url"])
}

func TestSubmitPaymentUpstreamFailureKeepsState(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	checkout := new(services.MockCheckoutService)
	checkout.On("Submit", mock.Anything, mock.Anything, mock.Anything).Return(nil, &api.Error{
		StatusCode: http.StatusInternalServerError,
		Message:    "no se pudo crear el pedido",
	})
	h := NewCheckoutHandler(checkout, store)

	cookies := seedCheckoutSession(t, store, testCart(), paymentReadyState())

	rec := httptest.NewRecorder()
	h.SubmitPayment(rec, checkoutRequest(http.MethodPost, "/api/checkout/payment", `{"payment_method":"TRANSFERENCIA"}`, cookies))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "no se pudo crear el pedido", body["error"])

	// The wizard state survives, so another attempt still works
	checkout.ExpectedCalls = nil
	checkout.On("Submit", mock.Anything, mock.Anything, mock.Anything).Return(&services.CheckoutResult{
		OrderID: "o1", OrderNumber: 7,
	}, nil)

	retry := httptest.NewRecorder()
	h.SubmitPayment(retry, checkoutRequest(http.MethodPost, "/api/checkout/payment", `{"payment_method":"TRANSFERENCIA"}`, cookies))
	assert.Equal(t, http.StatusOK, retry.Code)
}

func TestSubmitPaymentInvalidMethod(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	h := NewCheckoutHandler(new(services.MockCheckoutService), store)

	cookies := seedCheckoutSession(t, store, testCart(), paymentReadyState())

	rec := httptest.NewRecorder()
	h.SubmitPayment(rec, checkoutRequest(http.MethodPost, "/api/checkout/payment", `{"payment_method":"CHEQUE"}`, cookies))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestStepBack(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	h := NewCheckoutHandler(new(services.MockCheckoutService), store)

	cookies := seedCheckoutSession(t, store, testCart(), paymentReadyState())

	rec := httptest.NewRecorder()
	h.StepBack(rec, checkoutRequest(http.MethodPost, "/api/checkout/back", "", cookies))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(models.StepShipping), body["step"])
}

func TestConfirmation(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	checkout := new(services.MockCheckoutService)
	checkout.On("Confirmation", mock.Anything, "o1", 42).Return(&services.OrderConfirmationView{
		OrderID:     "o1",
		OrderNumber: 42,
		WhatsAppURL: "https://wa.me/5491122334455",
		Settings:    models.SettingsFromEntries(nil),
	}, nil)
	h := NewCheckoutHandler(checkout, store)

	rec := httptest.NewRecorder()
	h.Confirmation(rec, httptest.NewRequest(http.MethodGet, "/api/checkout/confirmation?order=o1&number=42", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(42), body["order_number"])
	checkout.AssertExpectations(t)
}

func TestPaymentStatusRoute(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	checkout := new(services.MockCheckoutService)
	checkout.On("PaymentStatus", mock.Anything, "o1").Return(&api.PaymentState{
		OrderID: "o1",
		Status:  "PAGADO",
	}, nil)
	h := NewCheckoutHandler(checkout, store)

	r := chi.NewRouter()
	r.Get("/api/checkout/status/{orderID}", h.PaymentStatus)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/checkout/status/o1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "PAGADO", body["estado"])
}
