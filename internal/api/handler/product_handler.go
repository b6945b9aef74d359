package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/smartinventory/pos-admin/internal/core/ports"
)

// ProductHandler backs the product list/drawer screens and the supplier
// dropdown.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type productRequest struct {
	Name          string          `json:"name" validate:"required"`
	Code          string          `json:"code"`
	CategoryID    int64           `json:"categoryId" validate:"required"`
	SupplierID    int64           `json:"supplierId" validate:"required"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	StockQuantity int             `json:"stockQuantity" validate:"gte=0"`
	ReorderLevel  int             `json:"reorderLevel" validate:"gte=0"`
}

func (r productRequest) toInput() ports.ProductInput {
	return ports.ProductInput{
		Name:          r.Name,
		Code:          r.Code,
		CategoryID:    r.CategoryID,
		SupplierID:    r.SupplierID,
		CostPrice:     r.CostPrice,
		SellingPrice:  r.SellingPrice,
		StockQuantity: r.StockQuantity,
		ReorderLevel:  r.ReorderLevel,
	}
}

// List returns one page of the product listing.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        page        query     int     false  "Page number (0-based)"
// @Param        size        query     int     false  "Page size"
// @Param        search      query     string  false  "Name search"
// @Param        categoryId  query     int     false  "Filter by category"
// @Success      200         {object}  domain.ProductPage
// @Failure      401         {object}  map[string]string
// @Router       /console/inventory/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	categoryID, _ := strconv.ParseInt(c.QueryParam("categoryId"), 10, 64)

	result, err := h.service.List(c.Request().Context(), ports.ProductQuery{
		Page:       page,
		Size:       size,
		Search:     c.QueryParam("search"),
		CategoryID: categoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Create adds a product.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Product fields"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Router       /console/inventory/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// Update edits a product.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Product ID"
// @Param        body  body      productRequest  true  "Product fields"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Router       /console/inventory/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Delete removes a product.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id  path  int  true  "Product ID"
// @Success      204
// @Router       /console/inventory/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Suppliers returns the supplier dropdown options.
//
// @Summary      List suppliers
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Supplier
// @Router       /console/inventory/suppliers [get]
func (h *ProductHandler) Suppliers(c echo.Context) error {
	sups, err := h.service.ListSuppliers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sups)
}

// Catalog returns the point-of-sale product catalog for this session. A
// request superseded by a newer search for the same session answers 409.
//
// @Summary      POS catalog
// @Tags         sales
// @Produce      json
// @Param        search  query     string  false  "Name search"
// @Success      200     {array}   domain.Product
// @Failure      409     {object}  map[string]string
// @Router       /console/sales/catalog [get]
func (h *ProductHandler) Catalog(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	items, err := h.service.Catalog(c.Request().Context(), sess.ID, c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
