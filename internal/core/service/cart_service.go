package service

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/smartinventory/pos-admin/internal/api/metrics"
	"github.com/smartinventory/pos-admin/internal/core/domain"
	"github.com/smartinventory/pos-admin/internal/core/ports"
	"github.com/smartinventory/pos-admin/internal/invoice"
)

// CartManager owns one in-memory cart per operator session. All mutations go
// through the manager's lock; carts are never shared outside it.
type CartManager struct {
	sale     ports.SaleGateway
	resolver ports.ProductResolver
	renderer *invoice.Renderer
	logger   zerolog.Logger

	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func NewCartManager(sale ports.SaleGateway, resolver ports.ProductResolver, renderer *invoice.Renderer, logger zerolog.Logger) *CartManager {
	return &CartManager{
		sale:     sale,
		resolver: resolver,
		renderer: renderer,
		logger:   logger,
		carts:    make(map[string]*domain.Cart),
	}
}

func (m *CartManager) cartLocked(sessionID string) *domain.Cart {
	c, ok := m.carts[sessionID]
	if !ok {
		c = domain.NewCart()
		m.carts[sessionID] = c
	}
	return c
}

func viewOf(c *domain.Cart) ports.CartView {
	lines := make([]domain.LineItem, len(c.Lines))
	copy(lines, c.Lines)
	return ports.CartView{
		State:        c.State,
		Lines:        lines,
		CustomerName: c.CustomerName,
		Totals:       c.Totals(),
		TaxRate:      c.TaxRate,
	}
}

func (m *CartManager) View(sessionID string) ports.CartView {
	m.mu.Lock()
	defer m.mu.Unlock()
	return viewOf(m.cartLocked(sessionID))
}

// AddProduct adds one unit of a product from the session's current catalog
// snapshot. Products outside the snapshot are rejected.
func (m *CartManager) AddProduct(sessionID string, productID int64) (ports.CartView, error) {
	p, ok := m.resolver.Resolve(sessionID, productID)

	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.cartLocked(sessionID)
	if !ok {
		return viewOf(c), domain.ErrProductNotListed
	}
	c.AddProduct(p)
	return viewOf(c), nil
}

func (m *CartManager) SetQuantity(sessionID string, productID int64, qty int) ports.CartView {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.cartLocked(sessionID)
	c.SetQuantity(productID, qty)
	return viewOf(c)
}

func (m *CartManager) RemoveLine(sessionID string, productID int64) ports.CartView {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.cartLocked(sessionID)
	c.RemoveLine(productID)
	return viewOf(c)
}

func (m *CartManager) SetBilling(sessionID string, in ports.BillingInput) (ports.CartView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.cartLocked(sessionID)
	if in.Discount.IsNegative() || in.TaxRate.IsNegative() {
		return viewOf(c), domain.ErrInvalidInput
	}
	c.CustomerName = in.CustomerName
	c.Discount = in.Discount
	c.TaxRate = in.TaxRate
	return viewOf(c), nil
}

// Checkout submits the session's cart as a sale. The cart is locked into the
// submitting state for the duration of the backend call: a failure returns it
// to building with contents intact, success clears it. The invoice is derived
// from the cart as it was at submission time.
func (m *CartManager) Checkout(ctx context.Context, session domain.Session) (ports.CheckoutResult, error) {
	m.mu.Lock()
	c := m.cartLocked(session.ID)
	if err := c.BeginSubmit(); err != nil {
		m.mu.Unlock()
		return ports.CheckoutResult{}, err
	}
	snapshot := *c
	snapshot.Lines = make([]domain.LineItem, len(c.Lines))
	copy(snapshot.Lines, c.Lines)
	input := ports.SaleInput{
		CustomerName: c.CustomerName,
		ProductIDs:   c.ProductIDs(),
		Quantities:   c.Quantities(),
		UserID:       userIDFromToken(session.Token),
		TotalAmount:  c.Totals().GrandTotal,
	}
	m.mu.Unlock()

	res, err := m.sale.SubmitSale(ctx, input)

	m.mu.Lock()
	if err != nil {
		c.Fail()
		m.mu.Unlock()
		metrics.SalesSubmittedTotal.WithLabelValues("failed").Inc()
		m.logger.Error().Err(err).Str("session_id", session.ID).Msg("sale submission failed")
		return ports.CheckoutResult{}, err
	}
	c.Complete()
	m.mu.Unlock()

	metrics.SalesSubmittedTotal.WithLabelValues("ok").Inc()
	m.logger.Info().Int64("sale_id", res.ID).Str("session_id", session.ID).Msg("sale submitted")

	inv := domain.InvoiceFromCart(&snapshot, res.ID, time.Now().UTC())
	result := ports.CheckoutResult{
		SaleID:   res.ID,
		Invoice:  inv,
		Filename: invoice.Filename(res.ID),
	}

	// A render failure never fails the checkout; the sale is already recorded.
	pdf, renderErr := m.renderer.Render(inv)
	if renderErr != nil {
		metrics.InvoicesRenderedTotal.WithLabelValues("error").Inc()
		m.logger.Error().Err(renderErr).Int64("sale_id", res.ID).Msg("invoice render failed")
	} else {
		metrics.InvoicesRenderedTotal.WithLabelValues("ok").Inc()
		result.PDF = pdf
	}

	return result, nil
}

// Drop discards a session's cart. Used on logout.
func (m *CartManager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
}

// userIDFromToken extracts the operator's user ID from the bearer token's
// claims without verifying the signature; the backend is the verifier, the
// console only echoes the ID into the sale payload. Missing or malformed
// claims yield zero.
func userIDFromToken(token string) int64 {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0
	}
	id, ok := claims["userId"].(float64)
	if !ok {
		return 0
	}
	return int64(id)
}
