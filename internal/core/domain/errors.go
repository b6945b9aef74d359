package domain

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("access forbidden")
	ErrSessionNotFound  = errors.New("session not found")
	ErrInvalidInput     = errors.New("invalid input")

	ErrCartEmpty        = errors.New("cart is empty")
	ErrCartSubmitting   = errors.New("cart submission already in progress")
	ErrProductNotListed = errors.New("product not in current catalog")

	ErrStaleCatalog = errors.New("catalog fetch superseded")
)
