package models

import "errors"

var (
	// ErrEmptyCart indicates a checkout was attempted with no items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrIncompleteAddress indicates a required delivery address field is
	// missing.
	ErrIncompleteAddress = errors.New("delivery address is incomplete")

	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrUnknownCity indicates no delivery option exists for the city.
	ErrUnknownCity = errors.New("no delivery option for city")

	// ErrInvalidCredentials indicates a failed email/password login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already exists")

	// ErrUnknownProvider indicates an unsupported login provider.
	ErrUnknownProvider = errors.New("unknown login provider")
)
