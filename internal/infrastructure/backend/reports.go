package backend

import (
	"context"
	"net/http"

	"github.com/smartinventory/pos-admin/internal/core/domain"
)

// Report endpoints are read-only aggregates; the console renders them
// verbatim and never recomputes figures locally.

func (c *Client) Stats(ctx context.Context) (domain.ReportStats, error) {
	raw, err := c.call(ctx, "report_stats", http.MethodGet, "/reports/stats", nil, nil)
	if err != nil {
		return domain.ReportStats{}, err
	}
	var out domain.ReportStats
	if err := decode(raw, &out); err != nil {
		return domain.ReportStats{}, err
	}
	return out, nil
}

func (c *Client) DailySales(ctx context.Context) ([]domain.SalesPoint, error) {
	raw, err := c.call(ctx, "report_daily_sales", http.MethodGet, "/reports/sales/daily", nil, nil)
	if err != nil {
		return nil, err
	}
	var out []domain.SalesPoint
	if err := decode(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MonthlySales(ctx context.Context) ([]domain.SalesPoint, error) {
	raw, err := c.call(ctx, "report_monthly_sales", http.MethodGet, "/reports/sales/monthly", nil, nil)
	if err != nil {
		return nil, err
	}
	var out []domain.SalesPoint
	if err := decode(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) LowStock(ctx context.Context) ([]domain.Product, error) {
	raw, err := c.call(ctx, "report_low_stock", http.MethodGet, "/reports/stock/low", nil, nil)
	if err != nil {
		return nil, err
	}
	var dtos []productDTO
	if err := decode(raw, &dtos); err != nil {
		return nil, err
	}
	return mapProducts(dtos), nil
}

// LowStockOverview is the inventory dashboard's low-stock feed. The backend
// exposes it on a separate route from the admin report.
func (c *Client) LowStockOverview(ctx context.Context) ([]domain.Product, error) {
	raw, err := c.call(ctx, "report_low_stock_overview", http.MethodGet, "/reports/low-stock", nil, nil)
	if err != nil {
		return nil, err
	}
	var dtos []productDTO
	if err := decode(raw, &dtos); err != nil {
		return nil, err
	}
	return mapProducts(dtos), nil
}

func (c *Client) TodaySummary(ctx context.Context) (domain.TodaySummary, error) {
	raw, err := c.call(ctx, "report_today_summary", http.MethodGet, "/reports/today-summary", nil, nil)
	if err != nil {
		return domain.TodaySummary{}, err
	}
	var out domain.TodaySummary
	if err := decode(raw, &out); err != nil {
		return domain.TodaySummary{}, err
	}
	return out, nil
}

func (c *Client) TopProducts(ctx context.Context) ([]domain.TopProduct, error) {
	raw, err := c.call(ctx, "report_top_products", http.MethodGet, "/reports/sales/top-products", nil, nil)
	if err != nil {
		return nil, err
	}
	var out []domain.TopProduct
	if err := decode(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CategorySales(ctx context.Context) ([]domain.CategorySales, error) {
	raw, err := c.call(ctx, "report_category_sales", http.MethodGet, "/reports/sales/category-wise", nil, nil)
	if err != nil {
		return nil, err
	}
	var out []domain.CategorySales
	if err := decode(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
