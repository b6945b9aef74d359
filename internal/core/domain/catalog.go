package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the client view of a backend product record. The console never
// owns product data; copies are refetched on demand.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	CategoryID    int64           `json:"categoryId"`
	CategoryName  string          `json:"categoryName"`
	SupplierID    int64           `json:"supplierId"`
	SupplierName  string          `json:"supplierName"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	StockQuantity int             `json:"stockQuantity"`
	ReorderLevel  int             `json:"reorderLevel"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ProductPage is one page of the product listing.
type ProductPage struct {
	Items         []Product `json:"items"`
	TotalElements int64     `json:"totalElements"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
}

// Category is a flat backend category record.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Supplier is a flat backend supplier record, read-only on the console.
type Supplier struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
