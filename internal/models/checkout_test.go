package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContact(s *CheckoutState) {
	s.FirstName = "Ana"
	s.LastName = "García"
	s.Email = "ana@example.com"
	s.Phone = "1122334455"
}

func TestValidateContact(t *testing.T) {
	t.Run("all fields missing", func(t *testing.T) {
		state := NewCheckoutState()
		errs := state.ValidateContact()

		assert.Contains(t, errs, "first_name")
		assert.Contains(t, errs, "last_name")
		assert.Contains(t, errs, "email")
		assert.Contains(t, errs, "phone")
	})

	t.Run("malformed email", func(t *testing.T) {
		state := NewCheckoutState()
		validContact(state)
		state.Email = "not-an-email"

		errs := state.ValidateContact()
		assert.Contains(t, errs, "email")
		assert.Len(t, errs, 1)
	})

	t.Run("whitespace-only fields are rejected", func(t *testing.T) {
		state := NewCheckoutState()
		validContact(state)
		state.FirstName = "   "

		errs := state.ValidateContact()
		assert.Contains(t, errs, "first_name")
	})

	t.Run("valid contact passes", func(t *testing.T) {
		state := NewCheckoutState()
		validContact(state)

		assert.Empty(t, state.ValidateContact())
	})
}

func TestValidateShipping(t *testing.T) {
	t.Run("method is required", func(t *testing.T) {
		state := NewCheckoutState()
		errs := state.ValidateShipping()
		assert.Contains(t, errs, "shipping_method")
	})

	t.Run("unknown method is rejected", func(t *testing.T) {
		state := NewCheckoutState()
		state.ShippingMethod = "PALOMA_MENSAJERA"

		errs := state.ValidateShipping()
		assert.Contains(t, errs, "shipping_method")
	})

	t.Run("pickup needs no address", func(t *testing.T) {
		state := NewCheckoutState()
		state.ShippingMethod = ShippingPickup

		assert.Empty(t, state.ValidateShipping())
	})

	t.Run("delivery requires address city and province", func(t *testing.T) {
		state := NewCheckoutState()
		state.ShippingMethod = ShippingPostal

		errs := state.ValidateShipping()
		assert.Contains(t, errs, "address")
		assert.Contains(t, errs, "city")
		assert.Contains(t, errs, "province")

		state.Address = "Av. Siempreviva 742"
		state.City = "Rosario"
		state.Province = "Santa Fe"
		assert.Empty(t, state.ValidateShipping())
	})
}

func TestValidatePayment(t *testing.T) {
	state := NewCheckoutState()

	errs := state.ValidatePayment()
	assert.Contains(t, errs, "payment_method")

	state.PaymentMethod = "CHEQUE"
	errs = state.ValidatePayment()
	assert.Contains(t, errs, "payment_method")

	state.PaymentMethod = PaymentBankTransfer
	assert.Empty(t, state.ValidatePayment())
}

func TestShippingCosts(t *testing.T) {
	assert.Equal(t, 0, ShippingPickup.Cost())
	assert.Equal(t, 3500, ShippingPostal.Cost())
	assert.Equal(t, 5000, ShippingExpress.Cost())

	assert.False(t, ShippingPickup.RequiresAddress())
	assert.True(t, ShippingPostal.RequiresAddress())
	assert.True(t, ShippingExpress.RequiresAddress())
}

func TestAdvanceAndBack(t *testing.T) {
	state := NewCheckoutState()
	assert.Equal(t, StepContact, state.CurrentStep())

	// Cannot advance with an invalid step
	errs := state.Advance()
	assert.NotEmpty(t, errs)
	assert.Equal(t, StepContact, state.CurrentStep())

	validContact(state)
	require.Empty(t, state.Advance())
	assert.Equal(t, StepShipping, state.CurrentStep())

	state.ShippingMethod = ShippingPickup
	require.Empty(t, state.Advance())
	assert.Equal(t, StepPayment, state.CurrentStep())

	// Advance never moves past the payment step
	state.PaymentMethod = PaymentBankTransfer
	require.Empty(t, state.Advance())
	assert.Equal(t, StepPayment, state.CurrentStep())

	// Back is always allowed, down to the first step
	state.Back()
	assert.Equal(t, StepShipping, state.CurrentStep())
	state.Back()
	assert.Equal(t, StepContact, state.CurrentStep())
	state.Back()
	assert.Equal(t, StepContact, state.CurrentStep())
}

func TestCurrentStepClampsUnknownValues(t *testing.T) {
	assert.Equal(t, StepContact, (&CheckoutState{Step: 0}).CurrentStep())
	assert.Equal(t, StepContact, (&CheckoutState{Step: -2}).CurrentStep())
	assert.Equal(t, StepPayment, (&CheckoutState{Step: 9}).CurrentStep())
}

func TestBuildOrder(t *testing.T) {
	cart := &Cart{}
	cart.AddLine(CartLine{ProductID: "p1", Name: "Maceta", UnitPrice: 2000, Quantity: 2, Variant: "Verde"})
	cart.AddLine(CartLine{ProductID: "p2", Name: "Llavero", UnitPrice: 500, Quantity: 1})

	state := NewCheckoutState()
	state.FirstName = "  Ana "
	state.LastName = "García"
	state.Email = "ana@example.com"
	state.Phone = "1122334455"
	state.ShippingMethod = ShippingPostal
	state.Address = "Av. Siempreviva 742"
	state.City = "Rosario"
	state.Province = "Santa Fe"
	state.PaymentMethod = PaymentBankTransfer
	state.Notes = "Tocar timbre"

	order := state.BuildOrder(cart)

	require.Len(t, order.Items, 2)
	assert.Equal(t, OrderItem{ProductID: "p1", Quantity: 2, Variant: "Verde"}, order.Items[0])
	assert.Equal(t, OrderItem{ProductID: "p2", Quantity: 1}, order.Items[1])

	assert.Equal(t, "Ana", order.FirstName, "fields are trimmed")
	assert.Equal(t, ShippingPostal, order.ShippingMethod)
	assert.Equal(t, PaymentBankTransfer, order.PaymentMethod)
	assert.Equal(t, 3500, order.ShippingCost)
	assert.Equal(t, "Tocar timbre", order.Notes)
	assert.Empty(t, order.Reference)
}
