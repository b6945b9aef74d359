package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/smartinventory/pos-admin/internal/core/domain"
	"github.com/smartinventory/pos-admin/internal/core/ports"
)

// CartHandler backs the point-of-sale screen: cart building, billing fields
// and checkout.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type addProductRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

type billingRequest struct {
	CustomerName string          `json:"customerName"`
	Discount     decimal.Decimal `json:"discount"`
	TaxRate      decimal.Decimal `json:"taxRate"`
}

type checkoutResponse struct {
	SaleID   int64          `json:"saleId"`
	Invoice  domain.Invoice `json:"invoice"`
	Filename string         `json:"filename"`
	// PDF is the rendered invoice document, base64-encoded; empty when
	// rendering failed (the sale itself still succeeded).
	PDF []byte `json:"pdf,omitempty"`
}

// View returns the session's cart with derived totals.
//
// @Summary      Cart contents
// @Tags         sales
// @Produce      json
// @Success      200  {object}  ports.CartView
// @Failure      401  {object}  map[string]string
// @Router       /console/sales/cart [get]
func (h *CartHandler) View(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.service.View(sess.ID))
}

// Add puts one unit of a catalog product into the cart.
//
// @Summary      Add a product to the cart
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body      addProductRequest  true  "Product reference"
// @Success      200   {object}  ports.CartView
// @Failure      409   {object}  map[string]string
// @Router       /console/sales/cart/items [post]
func (h *CartHandler) Add(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req addProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.AddProduct(sess.ID, req.ProductID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// SetQuantity replaces a line's quantity. Quantities below one are ignored
// and the unchanged cart is returned.
//
// @Summary      Change a line quantity
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Product ID"
// @Param        body  body      quantityRequest  true  "New quantity"
// @Success      200   {object}  ports.CartView
// @Router       /console/sales/cart/items/{id} [put]
func (h *CartHandler) SetQuantity(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req quantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	return c.JSON(http.StatusOK, h.service.SetQuantity(sess.ID, id, req.Quantity))
}

// Remove deletes a line from the cart.
//
// @Summary      Remove a cart line
// @Tags         sales
// @Produce      json
// @Param        id  path  int  true  "Product ID"
// @Success      200  {object}  ports.CartView
// @Router       /console/sales/cart/items/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.service.RemoveLine(sess.ID, id))
}

// SetBilling updates the customer name, discount and tax rate.
//
// @Summary      Update billing fields
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body      billingRequest  true  "Billing fields"
// @Success      200   {object}  ports.CartView
// @Failure      400   {object}  map[string]string
// @Router       /console/sales/cart/billing [put]
func (h *CartHandler) SetBilling(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req billingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	view, err := h.service.SetBilling(sess.ID, ports.BillingInput{
		CustomerName: req.CustomerName,
		Discount:     req.Discount,
		TaxRate:      req.TaxRate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Checkout submits the cart as a sale and returns the rendered invoice.
//
// @Summary      Checkout
// @Tags         sales
// @Produce      json
// @Success      200  {object}  checkoutResponse
// @Failure      409  {object}  map[string]string
// @Router       /console/sales/checkout [post]
func (h *CartHandler) Checkout(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	result, err := h.service.Checkout(c.Request().Context(), sess)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, checkoutResponse{
		SaleID:   result.SaleID,
		Invoice:  result.Invoice,
		Filename: result.Filename,
		PDF:      result.PDF,
	})
}
