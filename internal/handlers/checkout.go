package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"printshop-storefront/internal/middleware"
	"printshop-storefront/internal/models"
	"printshop-storefront/internal/services"
)

// CheckoutHandler drives the three-step checkout wizard. The wizard state
// lives in the session next to the cart; only a confirmed submission
// reaches the store API.
type CheckoutHandler struct {
	checkoutService services.CheckoutServiceInterface
	store           sessions.Store
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService services.CheckoutServiceInterface, store sessions.Store) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		store:           store,
	}
}

// checkoutFromSession decodes the wizard state stored in the session
func checkoutFromSession(session *sessions.Session) *models.CheckoutState {
	raw, ok := session.Values[middleware.SessionKeyCheckout].(string)
	if !ok || raw == "" {
		return models.NewCheckoutState()
	}
	state := &models.CheckoutState{}
	if err := json.Unmarshal([]byte(raw), state); err != nil {
		log.Printf("Discarding unreadable checkout state: %v", err)
		return models.NewCheckoutState()
	}
	return state
}

// saveCheckout serializes the wizard state back into the session
func saveCheckout(w http.ResponseWriter, r *http.Request, session *sessions.Session, state *models.CheckoutState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	session.Values[middleware.SessionKeyCheckout] = string(data)
	return session.Save(r, w)
}

// checkoutPayload renders the wizard state together with the order totals
func checkoutPayload(state *models.CheckoutState, cart *models.Cart) map[string]interface{} {
	subtotal := cart.TotalAmount()
	shipping := state.ShippingCost()
	return map[string]interface{}{
		"state":         state,
		"step":          state.CurrentStep(),
		"cart":          cartPayload(cart),
		"subtotal":      subtotal,
		"shipping_cost": shipping,
		"total":         subtotal + shipping,
	}
}

// ViewCheckout returns the wizard state and the order summary. An empty
// cart cannot enter checkout.
func (h *CheckoutHandler) ViewCheckout(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "session error")
		return
	}

	cart := cartFromSession(session)
	if cart.IsEmpty() {
		respondError(w, http.StatusConflict, "cart is empty")
		return
	}

	respondJSON(w, http.StatusOK, checkoutPayload(checkoutFromSession(session), cart))
}

// SubmitContact stores the step 1 fields and advances to shipping
func (h *CheckoutHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName  string `json:"first_name"`
		LastName   string `json:"last_name"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
		NationalID string `json:"national_id"`
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
	if cart.IsEmpty() {
		respondError(w, http.StatusConflict, "cart is empty")
		return
	}

	state := checkoutFromSession(session)
	state.FirstName = req.FirstName
	state.LastName = req.LastName
	state.Email = req.Email
	state.Phone = req.Phone
	state.NationalID = req.NationalID

	if errs := state.ValidateContact(); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}
	// Revisiting step 1 after stepping back must not rewind the wizard
	if state.CurrentStep() == models.StepContact {
		state.Step = models.StepShipping
	}

	if err := saveCheckout(w, r, session, state); err != nil {
		log.Printf("Failed to save checkout state: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to save checkout state")
		return
	}
	respondJSON(w, http.StatusOK, checkoutPayload(state, cart))
}

// SubmitShipping stores the step 2 fields and advances to payment
func (h *CheckoutHandler) SubmitShipping(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ShippingMethod models.ShippingMethod `json:"shipping_method"`
		Address        string                `json:"address"`
		City           string                `json:"city"`
		Province       string                `json:"province"`
		PostalCode     string                `json:"postal_code"`
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
	if cart.IsEmpty() {
		respondError(w, http.StatusConflict, "cart is empty")
		return
	}

	state := checkoutFromSession(session)
	if state.CurrentStep() < models.StepShipping {
		respondError(w, http.StatusConflict, "complete the contact step first")
		return
	}

	state.ShippingMethod = req.ShippingMethod
	state.Address = req.Address
	state.City = req.City
	state.Province = req.Province
	state.PostalCode = req.PostalCode

	if errs := state.ValidateShipping(); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}
	if state.CurrentStep() == models.StepShipping {
		state.Step = models.StepPayment
	}

	if err := saveCheckout(w, r, session, state); err != nil {
		log.Printf("Failed to save checkout state: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to save checkout state")
		return
	}
	respondJSON(w, http.StatusOK, checkoutPayload(state, cart))
}

// SubmitPayment stores the step 3 fields and submits the order. On
// success the cart and the wizard state are cleared; on an upstream
// failure both survive so the shopper can retry.
func (h *CheckoutHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentMethod models.PaymentMethod `json:"payment_method"`
		Notes         string               `json:"notes"`
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
	state := checkoutFromSession(session)
	if state.CurrentStep() < models.StepPayment {
		respondError(w, http.StatusConflict, "complete the previous steps first")
		return
	}

	state.PaymentMethod = req.PaymentMethod
	state.Notes = req.Notes

	if errs := state.ValidatePayment(); len(errs) > 0 {
		respondValidationErrors(w, errs)
		return
	}

	result, err := h.checkoutService.Submit(r.Context(), state, cart)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyCart):
			respondError(w, http.StatusConflict, "cart is empty")
		case errors.Is(err, models.ErrCheckoutIncomplete):
			respondValidationErrors(w, state.Validate())
		default:
			respondUpstreamError(w, err, "failed to submit order")
		}
		return
	}

	// The order is placed; the session starts over
	cart.Clear()
	delete(session.Values, middleware.SessionKeyCheckout)
	if err := saveCart(w, r, session, cart); err != nil {
		// The order went through, so a cookie failure only gets logged
		log.Printf("Failed to reset session after checkout: %v", err)
	}

	respondJSON(w, http.StatusOK, result)
}

// StepBack moves the wizard one step back
func (h *CheckoutHandler) StepBack(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "session error")
		return
	}

	cart := cartFromSession(session)
	state := checkoutFromSession(session)
	state.Back()

	if err := saveCheckout(w, r, session, state); err != nil {
		log.Printf("Failed to save checkout state: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to save checkout state")
		return
	}
	respondJSON(w, http.StatusOK, checkoutPayload(state, cart))
}

// Confirmation returns the bank-transfer confirmation page payload
func (h *CheckoutHandler) Confirmation(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("order")
	if orderID == "" {
		respondError(w, http.StatusBadRequest, "order is required")
		return
	}
	number, err := strconv.Atoi(r.URL.Query().Get("number"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "number must be an integer")
		return
	}

	view, err := h.checkoutService.Confirmation(r.Context(), orderID, number)
	if err != nil {
		respondUpstreamError(w, err, "failed to load confirmation")
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// PaymentStatus reports the gateway payment state for an order
func (h *CheckoutHandler) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	if orderID == "" {
		respondError(w, http.StatusBadRequest, "order id is required")
		return
	}

	state, err := h.checkoutService.PaymentStatus(r.Context(), orderID)
	if err != nil {
		respondUpstreamError(w, err, "failed to fetch payment status")
		return
	}
	respondJSON(w, http.StatusOK, state)
}
