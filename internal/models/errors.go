package models

import "errors"

var (
	// ErrEmptyCart is returned when checkout is attempted with no cart lines
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCheckoutIncomplete is returned when submission is attempted with
	// invalid wizard data
	ErrCheckoutIncomplete = errors.New("checkout data is incomplete")

	// ErrSessionExpired is returned when a stored credential token is no
	// longer valid
	ErrSessionExpired = errors.New("session expired")

	// ErrCategoryInUse is returned when a category delete is rejected
	// because products still reference it
	ErrCategoryInUse = errors.New("category still has products assigned; move or delete them first")
)
