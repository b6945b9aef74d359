package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"

	"github.com/smartinventory/pos-admin/internal/core/domain"
	"github.com/smartinventory/pos-admin/internal/core/ports"
	"github.com/smartinventory/pos-admin/internal/invoice"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubSaleGateway struct {
	lastInput ports.SaleInput
	result    ports.SaleResult
	err       error
	calls     int
}

func (g *stubSaleGateway) SubmitSale(_ context.Context, in ports.SaleInput) (ports.SaleResult, error) {
	g.calls++
	g.lastInput = in
	if g.err != nil {
		return ports.SaleResult{}, g.err
	}
	return g.result, nil
}

type stubResolver struct {
	products map[int64]domain.Product
}

func (r *stubResolver) Resolve(_ string, productID int64) (domain.Product, bool) {
	p, ok := r.products[productID]
	return p, ok
}

func newCartManager(sale *stubSaleGateway) *CartManager {
	resolver := &stubResolver{products: map[int64]domain.Product{
		1: {ID: 1, Name: "Keyboard", SellingPrice: decimal.NewFromInt(50)},
		2: {ID: 2, Name: "Mouse", SellingPrice: decimal.NewFromInt(25)},
	}}
	return NewCartManager(sale, resolver, invoice.NewRenderer(), discardLogger)
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

// ---------------------------------------------------------------------------
// Cart building
// ---------------------------------------------------------------------------

func TestCartManager_AddProduct_MergesLines(t *testing.T) {
	mgr := newCartManager(&stubSaleGateway{})

	if _, err := mgr.AddProduct("s1", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	view, err := mgr.AddProduct("s1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(view.Lines) != 1 {
		t.Fatalf("expected 1 merged line, got %d", len(view.Lines))
	}
	if view.Lines[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", view.Lines[0].Quantity)
	}
	if view.Lines[0].LineTotal.String() != "100" {
		t.Errorf("expected line total 100, got %s", view.Lines[0].LineTotal)
	}
	if view.State != domain.CartBuilding {
		t.Errorf("expected building state, got %q", view.State)
	}
}

func TestCartManager_AddProduct_OutsideCatalog(t *testing.T) {
	mgr := newCartManager(&stubSaleGateway{})

	_, err := mgr.AddProduct("s1", 99)
	if !errors.Is(err, domain.ErrProductNotListed) {
		t.Errorf("expected ErrProductNotListed, got %v", err)
	}
	if view := mgr.View("s1"); view.State != domain.CartEmpty {
		t.Errorf("rejected add must leave the cart empty, got %q", view.State)
	}
}

func TestCartManager_SetQuantity_BelowOneIsIgnored(t *testing.T) {
	mgr := newCartManager(&stubSaleGateway{})
	_, _ = mgr.AddProduct("s1", 1)

	view := mgr.SetQuantity("s1", 1, 0)
	if view.Lines[0].Quantity != 1 {
		t.Errorf("quantity below 1 must be ignored, got %d", view.Lines[0].Quantity)
	}
	view = mgr.SetQuantity("s1", 1, -3)
	if view.Lines[0].Quantity != 1 {
		t.Errorf("negative quantity must be ignored, got %d", view.Lines[0].Quantity)
	}
}

func TestCartManager_RemoveLastLineEmptiesCart(t *testing.T) {
	mgr := newCartManager(&stubSaleGateway{})
	_, _ = mgr.AddProduct("s1", 1)

	view := mgr.RemoveLine("s1", 1)
	if view.State != domain.CartEmpty {
		t.Errorf("expected empty state after removing last line, got %q", view.State)
	}
	if len(view.Lines) != 0 {
		t.Errorf("expected no lines, got %d", len(view.Lines))
	}
}

// ---------------------------------------------------------------------------
// Totals
// ---------------------------------------------------------------------------

func TestCartManager_Totals(t *testing.T) {
	mgr := newCartManager(&stubSaleGateway{})
	// 5 keyboards at 50 = 250.
	for i := 0; i < 5; i++ {
		_, _ = mgr.AddProduct("s1", 1)
	}
	view, err := mgr.SetBilling("s1", ports.BillingInput{
		CustomerName: "Ravi",
		Discount:     decimal.NewFromInt(25),
		TaxRate:      decimal.NewFromInt(12),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.Totals.Subtotal.String() != "250" {
		t.Errorf("subtotal: expected 250, got %s", view.Totals.Subtotal)
	}
	if view.Totals.Tax.String() != "30" {
		t.Errorf("tax: expected 30, got %s", view.Totals.Tax)
	}
	if view.Totals.GrandTotal.String() != "255" {
		t.Errorf("grand total: expected 255, got %s", view.Totals.GrandTotal)
	}
}

func TestCartManager_Totals_NegativeGrandTotalPermitted(t *testing.T) {
	mgr := newCartManager(&stubSaleGateway{})
	_, _ = mgr.AddProduct("s1", 2) // 25

	view, err := mgr.SetBilling("s1", ports.BillingInput{Discount: decimal.NewFromInt(100)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Totals.GrandTotal.String() != "-75" {
		t.Errorf("expected grand total -75, got %s", view.Totals.GrandTotal)
	}
}

func TestCartManager_SetBilling_RejectsNegativeInputs(t *testing.T) {
	mgr := newCartManager(&stubSaleGateway{})
	if _, err := mgr.SetBilling("s1", ports.BillingInput{Discount: decimal.NewFromInt(-1)}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("negative discount: expected ErrInvalidInput, got %v", err)
	}
	if _, err := mgr.SetBilling("s1", ports.BillingInput{TaxRate: decimal.NewFromInt(-5)}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("negative tax rate: expected ErrInvalidInput, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Checkout
// ---------------------------------------------------------------------------

func TestCartManager_Checkout_EmptyCart(t *testing.T) {
	mgr := newCartManager(&stubSaleGateway{})
	_, err := mgr.Checkout(context.Background(), domain.Session{ID: "s1", Token: "t"})
	if !errors.Is(err, domain.ErrCartEmpty) {
		t.Errorf("expected ErrCartEmpty, got %v", err)
	}
}

func TestCartManager_Checkout_Success(t *testing.T) {
	sale := &stubSaleGateway{result: ports.SaleResult{ID: 88}}
	mgr := newCartManager(sale)

	_, _ = mgr.AddProduct("s1", 1) // keyboard 50
	_, _ = mgr.AddProduct("s1", 2) // mouse 25
	_, _ = mgr.AddProduct("s1", 2) // mouse qty 2
	_, _ = mgr.SetBilling("s1", ports.BillingInput{CustomerName: "Ravi"})

	token := signedToken(t, jwt.MapClaims{"userId": float64(12)})
	result, err := mgr.Checkout(context.Background(), domain.Session{ID: "s1", Token: token})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.SaleID != 88 {
		t.Errorf("expected sale id 88, got %d", result.SaleID)
	}
	if result.Filename != "invoice_88.pdf" {
		t.Errorf("expected invoice_88.pdf, got %q", result.Filename)
	}
	if len(result.PDF) == 0 {
		t.Error("expected rendered PDF bytes")
	}
	if len(result.Invoice.Lines) != 2 {
		t.Errorf("expected 2 invoice lines, got %d", len(result.Invoice.Lines))
	}
	if result.Invoice.GrandTotal.String() != "100" {
		t.Errorf("expected invoice grand total 100, got %s", result.Invoice.GrandTotal)
	}

	// Submitted payload: positional arrays, extracted user id, computed total.
	in := sale.lastInput
	if in.CustomerName != "Ravi" {
		t.Errorf("expected customer Ravi, got %q", in.CustomerName)
	}
	if len(in.ProductIDs) != 2 || in.ProductIDs[0] != 1 || in.ProductIDs[1] != 2 {
		t.Errorf("unexpected product ids: %v", in.ProductIDs)
	}
	if len(in.Quantities) != 2 || in.Quantities[0] != 1 || in.Quantities[1] != 2 {
		t.Errorf("unexpected quantities: %v", in.Quantities)
	}
	if in.UserID != 12 {
		t.Errorf("expected user id 12 from token, got %d", in.UserID)
	}
	if in.TotalAmount.String() != "100" {
		t.Errorf("expected total 100, got %s", in.TotalAmount)
	}

	// Cart is cleared after success.
	if view := mgr.View("s1"); view.State != domain.CartEmpty || len(view.Lines) != 0 || view.CustomerName != "" {
		t.Errorf("cart must be cleared after checkout, got %+v", view)
	}
}

func TestCartManager_Checkout_FailurePreservesCart(t *testing.T) {
	sale := &stubSaleGateway{err: errors.New("backend down")}
	mgr := newCartManager(sale)

	_, _ = mgr.AddProduct("s1", 1)
	_, _ = mgr.AddProduct("s1", 2)

	_, err := mgr.Checkout(context.Background(), domain.Session{ID: "s1", Token: "t"})
	if err == nil {
		t.Fatal("expected error")
	}

	view := mgr.View("s1")
	if view.State != domain.CartBuilding {
		t.Errorf("failed checkout must return the cart to building, got %q", view.State)
	}
	if len(view.Lines) != 2 {
		t.Errorf("failed checkout must preserve lines, got %d", len(view.Lines))
	}
}

func TestCartManager_Checkout_MalformedTokenSubmitsZeroUserID(t *testing.T) {
	sale := &stubSaleGateway{result: ports.SaleResult{ID: 1}}
	mgr := newCartManager(sale)
	_, _ = mgr.AddProduct("s1", 1)

	if _, err := mgr.Checkout(context.Background(), domain.Session{ID: "s1", Token: "not-a-jwt"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sale.lastInput.UserID != 0 {
		t.Errorf("malformed token must yield user id 0, got %d", sale.lastInput.UserID)
	}
}

func TestCartManager_Drop(t *testing.T) {
	mgr := newCartManager(&stubSaleGateway{})
	_, _ = mgr.AddProduct("s1", 1)

	mgr.Drop("s1")
	if view := mgr.View("s1"); view.State != domain.CartEmpty {
		t.Errorf("dropped cart must come back empty, got %q", view.State)
	}
}

func TestUserIDFromToken(t *testing.T) {
	if got := userIDFromToken(""); got != 0 {
		t.Errorf("empty token: expected 0, got %d", got)
	}
	tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).SignedString([]byte("k"))
	if got := userIDFromToken(tok); got != 0 {
		t.Errorf("token without userId: expected 0, got %d", got)
	}
}
