package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/smartinventory/pos-admin/internal/core/domain"
)

// CartView is the cart plus its freshly derived totals.
type CartView struct {
	State        domain.CartState  `json:"state"`
	Lines        []domain.LineItem `json:"lines"`
	CustomerName string            `json:"customerName"`
	Totals       domain.BillTotals `json:"totals"`
	TaxRate      decimal.Decimal   `json:"taxRate"`
}

// BillingInput carries the billing form fields. Discount and TaxRate must be
// non-negative.
type BillingInput struct {
	CustomerName string
	Discount     decimal.Decimal
	TaxRate      decimal.Decimal
}

// CheckoutResult is a submitted sale plus its rendered invoice. PDF is empty
// when rendering failed; the sale itself still succeeded.
type CheckoutResult struct {
	SaleID   int64
	Invoice  domain.Invoice
	PDF      []byte
	Filename string
}

// CartService owns one in-memory cart per operator session.
type CartService interface {
	View(sessionID string) CartView
	AddProduct(sessionID string, productID int64) (CartView, error)
	SetQuantity(sessionID string, productID int64, qty int) CartView
	RemoveLine(sessionID string, productID int64) CartView
	SetBilling(sessionID string, in BillingInput) (CartView, error)
	// Checkout submits the sale and derives the invoice. On backend failure
	// the cart is preserved; on success it is cleared.
	Checkout(ctx context.Context, session domain.Session) (CheckoutResult, error)
	// Drop discards a session's cart (logout, screen reset).
	Drop(sessionID string)
}
