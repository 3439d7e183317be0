package models

import (
	"regexp"
	"strings"
)

// Checkout wizard steps, in order
const (
	StepContact  = 1
	StepShipping = 2
	StepPayment  = 3
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CheckoutState is the progress of the checkout wizard for one browser
// session. Steps advance only when the current step validates; stepping
// back is always allowed.
type CheckoutState struct {
	Step int `json:"step"`

	// Step 1: contact
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	NationalID string `json:"national_id,omitempty"`

	// Step 2: shipping
	ShippingMethod ShippingMethod `json:"shipping_method,omitempty"`
	Address        string         `json:"address,omitempty"`
	City           string         `json:"city,omitempty"`
	Province       string         `json:"province,omitempty"`
	PostalCode     string         `json:"postal_code,omitempty"`

	// Step 3: payment
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

// NewCheckoutState returns a wizard positioned on the first step
func NewCheckoutState() *CheckoutState {
	return &CheckoutState{Step: StepContact}
}

// CurrentStep returns the step clamped to the valid range. Zero-valued
// states deserialized from an old session count as step one.
func (s *CheckoutState) CurrentStep() int {
	if s.Step < StepContact {
		return StepContact
	}
	if s.Step > StepPayment {
		return StepPayment
	}
	return s.Step
}

// ValidateContact validates the step 1 fields
func (s *CheckoutState) ValidateContact() map[string][]string {
	errors := make(map[string][]string)

	if strings.TrimSpace(s.FirstName) == "" {
		errors["first_name"] = []string{"First name is required"}
	}
	if strings.TrimSpace(s.LastName) == "" {
		errors["last_name"] = []string{"Last name is required"}
	}
	if strings.TrimSpace(s.Email) == "" {
		errors["email"] = []string{"Email is required"}
	} else if !emailRegex.MatchString(s.Email) {
		errors["email"] = []string{"Please enter a valid email address"}
	}
	if strings.TrimSpace(s.Phone) == "" {
		errors["phone"] = []string{"Phone is required"}
	}

	return errors
}

// ValidateShipping validates the step 2 fields. Address, city and
// province are required unless the order is collected in person.
func (s *CheckoutState) ValidateShipping() map[string][]string {
	errors := make(map[string][]string)

	if s.ShippingMethod == "" {
		errors["shipping_method"] = []string{"Please select a shipping method"}
		return errors
	}
	if !s.ShippingMethod.IsValid() {
		errors["shipping_method"] = []string{"Unknown shipping method"}
		return errors
	}

	if s.ShippingMethod.RequiresAddress() {
		if strings.TrimSpace(s.Address) == "" {
			errors["address"] = []string{"Shipping address is required"}
		}
		if strings.TrimSpace(s.City) == "" {
			errors["city"] = []string{"City is required"}
		}
		if strings.TrimSpace(s.Province) == "" {
			errors["province"] = []string{"Province is required"}
		}
	}

	return errors
}

// ValidatePayment validates the step 3 fields
func (s *CheckoutState) ValidatePayment() map[string][]string {
	errors := make(map[string][]string)

	if s.PaymentMethod == "" {
		errors["payment_method"] = []string{"Please select a payment method"}
	} else if !s.PaymentMethod.IsValid() {
		errors["payment_method"] = []string{"Unknown payment method"}
	}

	return errors
}

// Validate runs every step validator, merging the results. Used as a
// final gate before submission.
func (s *CheckoutState) Validate() map[string][]string {
	errors := s.ValidateContact()
	for field, msgs := range s.ValidateShipping() {
		errors[field] = msgs
	}
	for field, msgs := range s.ValidatePayment() {
		errors[field] = msgs
	}
	return errors
}

// Advance validates the current step and, when it passes, moves the
// wizard forward. The returned map is empty on success. Advance never
// moves past the payment step; submission is a separate action.
func (s *CheckoutState) Advance() map[string][]string {
	switch s.CurrentStep() {
	case StepContact:
		if errors := s.ValidateContact(); len(errors) > 0 {
			return errors
		}
		s.Step = StepShipping
	case StepShipping:
		if errors := s.ValidateShipping(); len(errors) > 0 {
			return errors
		}
		s.Step = StepPayment
	}
	return nil
}

// Back moves the wizard one step back, never before the first step
func (s *CheckoutState) Back() {
	if s.CurrentStep() > StepContact {
		s.Step = s.CurrentStep() - 1
	}
}

// ShippingCost returns the fee for the selected shipping method
func (s *CheckoutState) ShippingCost() int {
	return s.ShippingMethod.Cost()
}

// BuildOrder snapshots the cart lines and the collected form data into
// the order payload for the store API.
func (s *CheckoutState) BuildOrder(cart *Cart) *CheckoutOrder {
	items := make([]OrderItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Variant:   line.Variant,
		})
	}

	return &CheckoutOrder{
		Items:          items,
		FirstName:      strings.TrimSpace(s.FirstName),
		LastName:       strings.TrimSpace(s.LastName),
		Email:          strings.TrimSpace(s.Email),
		Phone:          strings.TrimSpace(s.Phone),
		NationalID:     strings.TrimSpace(s.NationalID),
		Address:        strings.TrimSpace(s.Address),
		City:           strings.TrimSpace(s.City),
		Province:       strings.TrimSpace(s.Province),
		PostalCode:     strings.TrimSpace(s.PostalCode),
		Notes:          strings.TrimSpace(s.Notes),
		ShippingMethod: s.ShippingMethod,
		PaymentMethod:  s.PaymentMethod,
		ShippingCost:   s.ShippingCost(),
	}
}
