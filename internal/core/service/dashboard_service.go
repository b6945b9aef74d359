package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/smartinventory/pos-admin/internal/api/metrics"
	"github.com/smartinventory/pos-admin/internal/core/domain"
	"github.com/smartinventory/pos-admin/internal/core/ports"
)

// recentPurchaseLimit caps the purchases shown on the inventory dashboard.
const recentPurchaseLimit = 5

// DashboardBuilder assembles the report views. Sections are fetched
// concurrently and in isolation: a failed section contributes its zero value
// and an entry in the view's Errors map, never an aborted view.
type DashboardBuilder struct {
	reports   ports.ReportsGateway
	catalog   ports.CatalogGateway
	purchases ports.PurchaseGateway
	logger    zerolog.Logger
}

func NewDashboardBuilder(reports ports.ReportsGateway, catalog ports.CatalogGateway, purchases ports.PurchaseGateway, logger zerolog.Logger) *DashboardBuilder {
	return &DashboardBuilder{reports: reports, catalog: catalog, purchases: purchases, logger: logger}
}

// sectionErrors collects per-section failures under one lock.
type sectionErrors struct {
	mu     sync.Mutex
	errs   map[string]string
	logger zerolog.Logger
}

func (e *sectionErrors) record(section string, err error) {
	if err == nil {
		return
	}
	e.mu.Lock()
	if e.errs == nil {
		e.errs = make(map[string]string)
	}
	e.errs[section] = err.Error()
	e.mu.Unlock()
	metrics.DashboardSectionErrors.WithLabelValues(section).Inc()
	e.logger.Warn().Err(err).Str("section", section).Msg("dashboard section failed")
}

func (b *DashboardBuilder) Admin(ctx context.Context) domain.AdminDashboard {
	var (
		view domain.AdminDashboard
		errs = sectionErrors{logger: b.logger}
		wg   sync.WaitGroup
	)

	run := func(section string, fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs.record(section, fetch())
		}()
	}

	run("stats", func() (err error) {
		view.Stats, err = b.reports.Stats(ctx)
		return
	})
	run("daily_sales", func() (err error) {
		view.DailySales, err = b.reports.DailySales(ctx)
		return
	})
	run("monthly_sales", func() (err error) {
		view.MonthlySales, err = b.reports.MonthlySales(ctx)
		return
	})
	run("low_stock", func() (err error) {
		view.LowStock, err = b.reports.LowStock(ctx)
		return
	})
	run("today_summary", func() (err error) {
		view.TodaySummary, err = b.reports.TodaySummary(ctx)
		return
	})
	run("top_products", func() (err error) {
		view.TopProducts, err = b.reports.TopProducts(ctx)
		return
	})
	run("category_sales", func() (err error) {
		view.CategorySales, err = b.reports.CategorySales(ctx)
		return
	})

	wg.Wait()
	view.Errors = errs.errs
	return view
}

func (b *DashboardBuilder) Inventory(ctx context.Context) domain.InventoryDashboard {
	var (
		view domain.InventoryDashboard
		errs = sectionErrors{logger: b.logger}
		wg   sync.WaitGroup
	)

	run := func(section string, fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs.record(section, fetch())
		}()
	}

	run("product_count", func() error {
		page, err := b.catalog.ListProducts(ctx, ports.ProductQuery{Size: 1})
		if err != nil {
			return err
		}
		view.ProductCount = page.TotalElements
		return nil
	})
	run("low_stock", func() (err error) {
		view.LowStock, err = b.reports.LowStockOverview(ctx)
		return
	})
	run("category_count", func() error {
		cats, err := b.catalog.ListCategories(ctx)
		if err != nil {
			return err
		}
		view.CategoryCount = int64(len(cats))
		return nil
	})
	run("recent_purchases", func() error {
		all, err := b.purchases.ListPurchases(ctx)
		if err != nil {
			return err
		}
		if len(all) > recentPurchaseLimit {
			all = all[:recentPurchaseLimit]
		}
		view.RecentPurchases = all
		return nil
	})

	wg.Wait()
	view.Errors = errs.errs
	return view
}
