package domain

import "github.com/shopspring/decimal"

// Backend-provided aggregates rendered on the dashboards. The console never
// recomputes any of these figures.

// ReportStats is the all-time headline block on the admin dashboard.
type ReportStats struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalOrders  int64           `json:"totalOrders"`
	ProductCount int64           `json:"productCount"`
	UserCount    int64           `json:"userCount"`
}

// SalesPoint is one bucket of a daily or monthly sales series.
type SalesPoint struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// TodaySummary is the current day's roll-up.
type TodaySummary struct {
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// TopProduct is one row of the best-sellers report.
type TopProduct struct {
	ProductName string          `json:"productName"`
	Sold        int64           `json:"sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// CategorySales is one row of the category-wise sales report.
type CategorySales struct {
	CategoryName string          `json:"categoryName"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// AdminDashboard aggregates the admin view's report sections. Sections are
// fetched in isolation; a failed section leaves its zero value in place and
// records the cause in Errors keyed by section name.
type AdminDashboard struct {
	Stats         ReportStats       `json:"stats"`
	DailySales    []SalesPoint      `json:"dailySales"`
	MonthlySales  []SalesPoint      `json:"monthlySales"`
	LowStock      []Product         `json:"lowStock"`
	TodaySummary  TodaySummary      `json:"todaySummary"`
	TopProducts   []TopProduct      `json:"topProducts"`
	CategorySales []CategorySales   `json:"categorySales"`
	Errors        map[string]string `json:"errors,omitempty"`
}

// InventoryDashboard aggregates the inventory manager view's sections.
type InventoryDashboard struct {
	ProductCount    int64             `json:"productCount"`
	LowStock        []Product         `json:"lowStock"`
	CategoryCount   int64             `json:"categoryCount"`
	RecentPurchases []Purchase        `json:"recentPurchases"`
	Errors          map[string]string `json:"errors,omitempty"`
}
