package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartState is the lifecycle state of one billing session's cart.
type CartState string

const (
	CartEmpty      CartState = "empty"
	CartBuilding   CartState = "building"
	CartSubmitting CartState = "submitting"
)

// LineItem is one product-quantity pair within an in-progress sale.
// A cart holds at most one line per product ID.
type LineItem struct {
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// BillTotals carries the derived amounts for the current cart contents.
// Totals are recomputed on every read and never cached.
type BillTotals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Discount   decimal.Decimal `json:"discount"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

// Cart is the in-memory cart for one operator's billing session. Lines keep
// insertion order so the sale payload's productIds and quantities arrays
// correspond positionally.
type Cart struct {
	State        CartState       `json:"state"`
	Lines        []LineItem      `json:"lines"`
	CustomerName string          `json:"customerName"`
	Discount     decimal.Decimal `json:"discount"`
	TaxRate      decimal.Decimal `json:"taxRate"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{State: CartEmpty}
}

// AddProduct merges a product into the cart: an existing line gains one unit,
// otherwise a new line with quantity 1 is appended. Adding to an empty cart
// moves it to the building state.
func (c *Cart) AddProduct(p Product) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Quantity++
			c.Lines[i].LineTotal = lineTotal(c.Lines[i].UnitPrice, c.Lines[i].Quantity)
			return
		}
	}
	c.Lines = append(c.Lines, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.SellingPrice,
		Quantity:  1,
		LineTotal: p.SellingPrice,
	})
	if c.State == CartEmpty {
		c.State = CartBuilding
	}
}

// SetQuantity replaces the quantity of one line and recomputes that line's
// total. Quantities below 1 and unknown products are ignored; the prior
// quantity stands. Reports whether a change was applied.
func (c *Cart) SetQuantity(productID int64, qty int) bool {
	if qty < 1 {
		return false
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = qty
			c.Lines[i].LineTotal = lineTotal(c.Lines[i].UnitPrice, qty)
			return true
		}
	}
	return false
}

// RemoveLine deletes the line for productID. Removing the last line returns
// the cart to the empty state. Reports whether a line was removed.
func (c *Cart) RemoveLine(productID int64) bool {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			if len(c.Lines) == 0 {
				c.State = CartEmpty
			}
			return true
		}
	}
	return false
}

// Totals derives subtotal, tax and grand total from the current lines:
//
//	subtotal   = Σ lineTotal
//	tax        = subtotal × taxRate / 100
//	grandTotal = subtotal − discount + tax
//
// A discount larger than subtotal+tax yields a negative grand total; that is
// accepted as entered.
func (c *Cart) Totals() BillTotals {
	subtotal := decimal.Zero
	for _, l := range c.Lines {
		subtotal = subtotal.Add(l.LineTotal)
	}
	tax := subtotal.Mul(c.TaxRate).Div(decimal.NewFromInt(100))
	return BillTotals{
		Subtotal:   subtotal,
		Tax:        tax,
		Discount:   c.Discount,
		GrandTotal: subtotal.Sub(c.Discount).Add(tax),
	}
}

// BeginSubmit moves the cart into the submitting state. An empty cart and a
// cart already being submitted are both rejected.
func (c *Cart) BeginSubmit() error {
	switch c.State {
	case CartEmpty:
		return ErrCartEmpty
	case CartSubmitting:
		return ErrCartSubmitting
	}
	c.State = CartSubmitting
	return nil
}

// Complete clears all cart contents and billing fields after a successful
// sale, returning to the empty state.
func (c *Cart) Complete() {
	*c = Cart{State: CartEmpty}
}

// Fail returns a submitting cart to the building state with its contents
// preserved.
func (c *Cart) Fail() {
	c.State = CartBuilding
}

// ProductIDs returns the line product IDs in insertion order.
func (c *Cart) ProductIDs() []int64 {
	ids := make([]int64, len(c.Lines))
	for i, l := range c.Lines {
		ids[i] = l.ProductID
	}
	return ids
}

// Quantities returns the line quantities in insertion order, positionally
// matching ProductIDs.
func (c *Cart) Quantities() []int {
	qs := make([]int, len(c.Lines))
	for i, l := range c.Lines {
		qs[i] = l.Quantity
	}
	return qs
}

func lineTotal(unit decimal.Decimal, qty int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(qty)))
}

// InvoiceLine is one row of the rendered invoice document.
type InvoiceLine struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// Invoice is the printable record of a completed sale, derived from the cart
// lines and the backend-assigned sale identifier.
type Invoice struct {
	SaleID     int64
	IssuedAt   time.Time
	Lines      []InvoiceLine
	GrandTotal decimal.Decimal
}

// InvoiceFromCart derives the invoice for a completed sale from the cart's
// lines and computed grand total.
func InvoiceFromCart(c *Cart, saleID int64, issuedAt time.Time) Invoice {
	lines := make([]InvoiceLine, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = InvoiceLine{
			ProductName: l.Name,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TotalPrice:  l.LineTotal,
		}
	}
	return Invoice{
		SaleID:     saleID,
		IssuedAt:   issuedAt,
		Lines:      lines,
		GrandTotal: c.Totals().GrandTotal,
	}
}
