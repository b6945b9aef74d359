package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/smartinventory/pos-admin/internal/core/domain"
)

// The gateway interfaces below are the console's view of the remote REST
// backend. Implementations live in internal/infrastructure/backend; the
// console performs no persistence of its own behind them.

// LoginData is the payload of a successful backend login.
type LoginData struct {
	Token string
	Role  string
}

// AuthGateway authenticates operators against the backend.
type AuthGateway interface {
	Login(ctx context.Context, username, password string) (LoginData, error)
}

// CategoryInput carries the writable fields of a category.
type CategoryInput struct {
	Name        string
	Description string
}

// ProductQuery selects one page of the product listing.
type ProductQuery struct {
	Page       int
	Size       int
	Search     string
	CategoryID int64
	Sort       string
}

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name          string
	Code          string
	CategoryID    int64
	SupplierID    int64
	CostPrice     decimal.Decimal
	SellingPrice  decimal.Decimal
	StockQuantity int
	ReorderLevel  int
}

// CatalogGateway covers categories, products and suppliers.
type CatalogGateway interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, in CategoryInput) (domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, in CategoryInput) (domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListProducts(ctx context.Context, q ProductQuery) (domain.ProductPage, error)
	CreateProduct(ctx context.Context, in ProductInput) (domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, in ProductInput) (domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

// PurchaseInput carries the fields of a new stock purchase.
type PurchaseInput struct {
	ProductID  int64
	SupplierID int64
	Quantity   int
	UnitPrice  decimal.Decimal
}

// PurchaseGateway covers the purchases resource.
type PurchaseGateway interface {
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)
	CreatePurchase(ctx context.Context, in PurchaseInput) (domain.Purchase, error)
}

// RegisterUserInput carries a new user registration.
type RegisterUserInput struct {
	Username string
	Password string
	Role     domain.Role
}

// UserGateway covers the users resource, including the activation toggle.
type UserGateway interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	RegisterUser(ctx context.Context, in RegisterUserInput) (domain.User, error)
	SetUserActive(ctx context.Context, id int64, active bool) error
}

// SaleInput is the sale submission payload. ProductIDs and Quantities
// correspond positionally: the same index refers to one line item.
type SaleInput struct {
	CustomerName string
	ProductIDs   []int64
	Quantities   []int
	UserID       int64
	TotalAmount  decimal.Decimal
}

// SaleResult is the backend's acknowledgement of a posted sale.
type SaleResult struct {
	ID int64
}

// SaleGateway posts completed sales.
type SaleGateway interface {
	SubmitSale(ctx context.Context, in SaleInput) (SaleResult, error)
}

// ReportsGateway covers the read-only aggregate endpoints consumed by the
// dashboards.
type ReportsGateway interface {
	Stats(ctx context.Context) (domain.ReportStats, error)
	DailySales(ctx context.Context) ([]domain.SalesPoint, error)
	MonthlySales(ctx context.Context) ([]domain.SalesPoint, error)
	LowStock(ctx context.Context) ([]domain.Product, error)
	// LowStockOverview backs the inventory dashboard; the backend serves it
	// on a different route from the admin low-stock report.
	LowStockOverview(ctx context.Context) ([]domain.Product, error)
	TodaySummary(ctx context.Context) (domain.TodaySummary, error)
	TopProducts(ctx context.Context) ([]domain.TopProduct, error)
	CategorySales(ctx context.Context) ([]domain.CategorySales, error)
}
