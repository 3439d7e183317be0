package services

import (
	"context"

	"github.com/google/uuid"

	"printshop-storefront/internal/api"
	"printshop-storefront/internal/models"
)

// CheckoutResult is the outcome of a confirmed checkout. Exactly one of
// the two branches is populated: RedirectURL for the gateway flow, or the
// order fields for the bank-transfer flow.
type CheckoutResult struct {
	RedirectURL string `json:"redirect_url,omitempty"`

	OrderID     string `json:"order_id,omitempty"`
	OrderNumber int    `json:"order_number,omitempty"`
	WhatsAppURL string `json:"whatsapp_url,omitempty"`
}

// OrderConfirmationView is the payload for the bank-transfer
// confirmation page: the order reference plus the transfer details and
// the WhatsApp handoff link.
type OrderConfirmationView struct {
	OrderID     string               `json:"order_id"`
	OrderNumber int                  `json:"order_number"`
	WhatsAppURL string               `json:"whatsapp_url"`
	Settings    *models.SiteSettings `json:"settings"`
}

// CheckoutService submits confirmed checkouts to the store API
type CheckoutService struct {
	api      *api.Client
	settings SettingsServiceInterface
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(apiClient *api.Client, settings SettingsServiceInterface) *CheckoutService {
	return &CheckoutService{api: apiClient, settings: settings}
}

// Submit validates the wizard state, snapshots the cart into an order
// and posts it to the flow selected by the payment method. The caller is
// responsible for clearing the cart only after a successful result.
func (s *CheckoutService) Submit(ctx context.Context, state *models.CheckoutState, cart *models.Cart) (*CheckoutResult, error) {
	if cart.IsEmpty() {
		return nil, models.ErrEmptyCart
	}
	if errors := state.Validate(); len(errors) > 0 {
		return nil, models.ErrCheckoutIncomplete
	}

	order := state.BuildOrder(cart)

	switch state.PaymentMethod {
	case models.PaymentGateway:
		order.Reference = uuid.NewString()
		pref, err := s.api.CreatePaymentPreference(ctx, order)
		if err != nil {
			return nil, err
		}
		return &CheckoutResult{RedirectURL: pref.InitPoint}, nil

	default:
		conf, err := s.api.CreateWhatsAppOrder(ctx, order)
		if err != nil {
			return nil, err
		}

		result := &CheckoutResult{
			OrderID:     conf.OrderID,
			OrderNumber: conf.Number,
		}
		if settings, err := s.settings.SiteSettings(ctx); err == nil {
			result.WhatsAppURL = OrderWhatsAppLink(settings.WhatsAppCheckout, conf.Number)
		}
		return result, nil
	}
}

// Confirmation assembles the bank-transfer confirmation page payload
func (s *CheckoutService) Confirmation(ctx context.Context, orderID string, orderNumber int) (*OrderConfirmationView, error) {
	settings, err := s.settings.SiteSettings(ctx)
	if err != nil {
		return nil, err
	}

	return &OrderConfirmationView{
		OrderID:     orderID,
		OrderNumber: orderNumber,
		WhatsAppURL: OrderWhatsAppLink(settings.WhatsAppCheckout, orderNumber),
		Settings:    settings,
	}, nil
}

// PaymentStatus fetches the gateway payment status for an order
func (s *CheckoutService) PaymentStatus(ctx context.Context, orderID string) (*api.PaymentState, error) {
	return s.api.PaymentStatus(ctx, orderID)
}
