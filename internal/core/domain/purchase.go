package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is a stock purchase recorded against a supplier.
type Purchase struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"productId"`
	ProductName  string          `json:"productName"`
	SupplierID   int64           `json:"supplierId"`
	SupplierName string          `json:"supplierName"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	CreatedAt    time.Time       `json:"createdAt"`
}
