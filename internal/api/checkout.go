package api

import (
	"context"
	"net/url"

	"printshop-storefront/internal/models"
)

// PaymentPreference is the gateway response carrying the hosted payment
// page URL the browser must be sent to.
type PaymentPreference struct {
	InitPoint string `json:"init_point"`
}

// OrderConfirmation is the response to a bank-transfer order submission
type OrderConfirmation struct {
	OrderID string `json:"pedidoId"`
	Number  int    `json:"numero"`
}

// PaymentState is the gateway payment status for a placed order
type PaymentState struct {
	OrderID string `json:"pedidoId"`
	Status  string `json:"estado"`
}

// CreatePaymentPreference registers the order with the payment gateway
// flow and returns the redirect URL.
func (c *Client) CreatePaymentPreference(ctx context.Context, order *models.CheckoutOrder) (*PaymentPreference, error) {
	var pref PaymentPreference
	if err := c.post(ctx, "/pagos/crear-preferencia", "", order, &pref); err != nil {
		return nil, err
	}
	return &pref, nil
}

// CreateWhatsAppOrder registers a bank-transfer order and returns its
// confirmation number.
func (c *Client) CreateWhatsAppOrder(ctx context.Context, order *models.CheckoutOrder) (*OrderConfirmation, error) {
	var conf OrderConfirmation
	if err := c.post(ctx, "/pedidos/whatsapp", "", order, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// PaymentStatus fetches the gateway payment status for an order
func (c *Client) PaymentStatus(ctx context.Context, orderID string) (*PaymentState, error) {
	var state PaymentState
	if err := c.get(ctx, "/pagos/estado/"+url.PathEscape(orderID), "", &state); err != nil {
		return nil, err
	}
	return &state, nil
}
