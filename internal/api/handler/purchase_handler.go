package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/smartinventory/pos-admin/internal/core/ports"
)

// PurchaseHandler backs the stock purchase screens.
type PurchaseHandler struct {
	service ports.PurchaseService
}

func NewPurchaseHandler(service ports.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: service}
}

type purchaseRequest struct {
	ProductID  int64           `json:"productId" validate:"required"`
	SupplierID int64           `json:"supplierId" validate:"required"`
	Quantity   int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
}

// List returns all recorded purchases, newest first.
//
// @Summary      List purchases
// @Tags         purchases
// @Produce      json
// @Success      200  {array}   domain.Purchase
// @Failure      401  {object}  map[string]string
// @Router       /console/inventory/purchases [get]
func (h *PurchaseHandler) List(c echo.Context) error {
	purchases, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, purchases)
}

// Create records a stock purchase.
//
// @Summary      Record a purchase
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        body  body      purchaseRequest  true  "Purchase fields"
// @Success      201   {object}  domain.Purchase
// @Failure      400   {object}  map[string]string
// @Router       /console/inventory/purchases [post]
func (h *PurchaseHandler) Create(c echo.Context) error {
	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.service.Create(c.Request().Context(), ports.PurchaseInput{
		ProductID:  req.ProductID,
		SupplierID: req.SupplierID,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}
