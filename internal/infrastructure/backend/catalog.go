package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartinventory/pos-admin/internal/core/domain"
	"github.com/smartinventory/pos-admin/internal/core/ports"
)

// The backend nests category and supplier summaries inside product and
// purchase payloads, and is inconsistent about the name field ("categoryName"
// vs "name"). The DTOs below absorb both shapes.

type categoryDTO struct {
	ID           int64  `json:"id"`
	CategoryName string `json:"categoryName"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}

func (d categoryDTO) displayName() string {
	if d.CategoryName != "" {
		return d.CategoryName
	}
	return d.Name
}

type supplierDTO struct {
	ID           int64  `json:"id"`
	SupplierName string `json:"supplierName"`
	Name         string `json:"name"`
}

func (d supplierDTO) displayName() string {
	if d.SupplierName != "" {
		return d.SupplierName
	}
	return d.Name
}

type productDTO struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	Category      *categoryDTO    `json:"category"`
	Supplier      *supplierDTO    `json:"supplier"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	StockQuantity int             `json:"stockQuantity"`
	ReorderLevel  int             `json:"reorderLevel"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (d productDTO) toDomain() domain.Product {
	p := domain.Product{
		ID:            d.ID,
		Name:          d.Name,
		Code:          d.Code,
		CostPrice:     d.CostPrice,
		SellingPrice:  d.SellingPrice,
		StockQuantity: d.StockQuantity,
		ReorderLevel:  d.ReorderLevel,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if d.Category != nil {
		p.CategoryID = d.Category.ID
		p.CategoryName = d.Category.displayName()
	}
	if d.Supplier != nil {
		p.SupplierID = d.Supplier.ID
		p.SupplierName = d.Supplier.displayName()
	}
	return p
}

func mapProducts(dtos []productDTO) []domain.Product {
	out := make([]domain.Product, len(dtos))
	for i, d := range dtos {
		out[i] = d.toDomain()
	}
	return out
}

// ── Categories ───────────────────────────────────────────────────────────────

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	raw, err := c.call(ctx, "list_categories", http.MethodGet, "/category", nil, nil)
	if err != nil {
		return nil, err
	}
	var dtos []categoryDTO
	if err := decode(raw, &dtos); err != nil {
		return nil, err
	}
	cats := make([]domain.Category, len(dtos))
	for i, d := range dtos {
		cats[i] = domain.Category{ID: d.ID, Name: d.displayName(), Description: d.Description}
	}
	return cats, nil
}

type categoryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c *Client) CreateCategory(ctx context.Context, in ports.CategoryInput) (domain.Category, error) {
	raw, err := c.call(ctx, "create_category", http.MethodPost, "/category", nil,
		categoryPayload{Name: in.Name, Description: in.Description})
	if err != nil {
		return domain.Category{}, err
	}
	var d categoryDTO
	if err := decode(raw, &d); err != nil {
		return domain.Category{}, err
	}
	return domain.Category{ID: d.ID, Name: d.displayName(), Description: d.Description}, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, in ports.CategoryInput) (domain.Category, error) {
	raw, err := c.call(ctx, "update_category", http.MethodPut, "/category/"+strconv.FormatInt(id, 10), nil,
		categoryPayload{Name: in.Name, Description: in.Description})
	if err != nil {
		return domain.Category{}, err
	}
	var d categoryDTO
	if err := decode(raw, &d); err != nil {
		return domain.Category{}, err
	}
	return domain.Category{ID: d.ID, Name: d.displayName(), Description: d.Description}, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	_, err := c.call(ctx, "delete_category", http.MethodDelete, "/category/"+strconv.FormatInt(id, 10), nil, nil)
	return err
}

// ── Products ─────────────────────────────────────────────────────────────────

// productPage is the backend's paged listing shape.
type productPage struct {
	Content       []productDTO `json:"content"`
	TotalElements int64        `json:"totalElements"`
	Number        int          `json:"number"`
}

func (c *Client) ListProducts(ctx context.Context, q ports.ProductQuery) (domain.ProductPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("size", strconv.Itoa(q.Size))
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.CategoryID != 0 {
		query.Set("categoryId", strconv.FormatInt(q.CategoryID, 10))
	}
	if q.Sort != "" {
		query.Set("sort", q.Sort)
	}

	raw, err := c.call(ctx, "list_products", http.MethodGet, "/products", query, nil)
	if err != nil {
		return domain.ProductPage{}, err
	}

	var page productPage
	if err := decode(raw, &page); err != nil {
		return domain.ProductPage{}, err
	}
	if page.Content == nil {
		// Unpaged fallback: some deployments answer with a bare array.
		var dtos []productDTO
		if err := decode(raw, &dtos); err != nil {
			return domain.ProductPage{}, err
		}
		return domain.ProductPage{
			Items:         mapProducts(dtos),
			TotalElements: int64(len(dtos)),
			Page:          q.Page,
			Size:          q.Size,
		}, nil
	}

	return domain.ProductPage{
		Items:         mapProducts(page.Content),
		TotalElements: page.TotalElements,
		Page:          page.Number,
		Size:          q.Size,
	}, nil
}

type productPayload struct {
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	CategoryID    int64           `json:"categoryId"`
	SupplierID    int64           `json:"supplierId"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	StockQuantity int             `json:"stockQuantity"`
	ReorderLevel  int             `json:"reorderLevel"`
}

func productPayloadFrom(in ports.ProductInput) productPayload {
	return productPayload{
		Name:          in.Name,
		Code:          in.Code,
		CategoryID:    in.CategoryID,
		SupplierID:    in.SupplierID,
		CostPrice:     in.CostPrice,
		SellingPrice:  in.SellingPrice,
		StockQuantity: in.StockQuantity,
		ReorderLevel:  in.ReorderLevel,
	}
}

func (c *Client) CreateProduct(ctx context.Context, in ports.ProductInput) (domain.Product, error) {
	raw, err := c.call(ctx, "create_product", http.MethodPost, "/products/product", nil, productPayloadFrom(in))
	if err != nil {
		return domain.Product{}, err
	}
	var d productDTO
	if err := decode(raw, &d); err != nil {
		return domain.Product{}, err
	}
	return d.toDomain(), nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, in ports.ProductInput) (domain.Product, error) {
	raw, err := c.call(ctx, "update_product", http.MethodPut, "/products/product/"+strconv.FormatInt(id, 10), nil, productPayloadFrom(in))
	if err != nil {
		return domain.Product{}, err
	}
	var d productDTO
	if err := decode(raw, &d); err != nil {
		return domain.Product{}, err
	}
	return d.toDomain(), nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	_, err := c.call(ctx, "delete_product", http.MethodDelete, "/products/product/"+strconv.FormatInt(id, 10), nil, nil)
	return err
}

// ── Suppliers ────────────────────────────────────────────────────────────────

func (c *Client) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	raw, err := c.call(ctx, "list_suppliers", http.MethodGet, "/supplier", nil, nil)
	if err != nil {
		return nil, err
	}
	var dtos []supplierDTO
	if err := decode(raw, &dtos); err != nil {
		return nil, err
	}
	sups := make([]domain.Supplier, len(dtos))
	for i, d := range dtos {
		sups[i] = domain.Supplier{ID: d.ID, Name: d.displayName()}
	}
	return sups, nil
}
