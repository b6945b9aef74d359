package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/smartinventory/pos-admin/internal/api/metrics"
	"github.com/smartinventory/pos-admin/internal/core/domain"
	"github.com/smartinventory/pos-admin/internal/core/ports"
)

// catalogFetchSize bounds a single POS catalog fetch. The point-of-sale
// screen shows one flat list, so the fetch asks for one large page.
const catalogFetchSize = 500

// CategoryManager is a thin pass-through to the backend's category resource.
// Backend errors, including the in-use message on delete, surface verbatim.
type CategoryManager struct {
	gw     ports.CatalogGateway
	logger zerolog.Logger
}

func NewCategoryManager(gw ports.CatalogGateway, logger zerolog.Logger) *CategoryManager {
	return &CategoryManager{gw: gw, logger: logger}
}

func (m *CategoryManager) List(ctx context.Context) ([]domain.Category, error) {
	return m.gw.ListCategories(ctx)
}

func (m *CategoryManager) Create(ctx context.Context, in ports.CategoryInput) (domain.Category, error) {
	if in.Name == "" {
		return domain.Category{}, domain.ErrInvalidInput
	}
	cat, err := m.gw.CreateCategory(ctx, in)
	if err != nil {
		return domain.Category{}, err
	}
	m.logger.Info().Int64("category_id", cat.ID).Str("name", cat.Name).Msg("category created")
	return cat, nil
}

func (m *CategoryManager) Update(ctx context.Context, id int64, in ports.CategoryInput) (domain.Category, error) {
	if in.Name == "" {
		return domain.Category{}, domain.ErrInvalidInput
	}
	return m.gw.UpdateCategory(ctx, id, in)
}

func (m *CategoryManager) Delete(ctx context.Context, id int64) error {
	return m.gw.DeleteCategory(ctx, id)
}

// ProductManager backs the product screens and keeps a per-session catalog
// snapshot for the point-of-sale view.
type ProductManager struct {
	gw     ports.CatalogGateway
	logger zerolog.Logger

	mu        sync.Mutex
	snapshots map[string]*catalogSnapshot
}

// catalogSnapshot is one session's last committed POS catalog. The generation
// counter detects superseded fetches: only the newest fetch for a session may
// commit its result.
type catalogSnapshot struct {
	generation uint64
	cancel     context.CancelFunc
	products   []domain.Product
}

func NewProductManager(gw ports.CatalogGateway, logger zerolog.Logger) *ProductManager {
	return &ProductManager{
		gw:        gw,
		logger:    logger,
		snapshots: make(map[string]*catalogSnapshot),
	}
}

func (m *ProductManager) List(ctx context.Context, q ports.ProductQuery) (domain.ProductPage, error) {
	if q.Size <= 0 {
		q.Size = 10
	}
	if q.Sort == "" {
		q.Sort = "name,asc"
	}
	return m.gw.ListProducts(ctx, q)
}

func (m *ProductManager) Create(ctx context.Context, in ports.ProductInput) (domain.Product, error) {
	p, err := m.gw.CreateProduct(ctx, in)
	if err != nil {
		return domain.Product{}, err
	}
	m.logger.Info().Int64("product_id", p.ID).Str("name", p.Name).Msg("product created")
	return p, nil
}

func (m *ProductManager) Update(ctx context.Context, id int64, in ports.ProductInput) (domain.Product, error) {
	return m.gw.UpdateProduct(ctx, id, in)
}

func (m *ProductManager) Delete(ctx context.Context, id int64) error {
	return m.gw.DeleteProduct(ctx, id)
}

func (m *ProductManager) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return m.gw.ListSuppliers(ctx)
}

// Catalog fetches the POS catalog for one session. Starting a new fetch
// cancels the previous in-flight fetch for the same session and claims the
// snapshot: an older fetch that loses the race reports ErrStaleCatalog and
// leaves the snapshot untouched.
func (m *ProductManager) Catalog(ctx context.Context, sessionID, search string) ([]domain.Product, error) {
	m.mu.Lock()
	snap, ok := m.snapshots[sessionID]
	if !ok {
		snap = &catalogSnapshot{}
		m.snapshots[sessionID] = snap
	}
	if snap.cancel != nil {
		snap.cancel()
	}
	snap.generation++
	gen := snap.generation
	fetchCtx, cancel := context.WithCancel(ctx)
	snap.cancel = cancel
	m.mu.Unlock()

	page, err := m.gw.ListProducts(fetchCtx, ports.ProductQuery{
		Size:   catalogFetchSize,
		Search: search,
		Sort:   "name,asc",
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	if snap.generation != gen {
		metrics.CatalogFetchesSuperseded.Inc()
		return nil, domain.ErrStaleCatalog
	}
	if err != nil {
		return nil, err
	}
	snap.products = page.Items
	return page.Items, nil
}

// Resolve looks a product up in the session's current catalog snapshot. The
// cart may only reference products the operator can currently see.
func (m *ProductManager) Resolve(sessionID string, productID int64) (domain.Product, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap, ok := m.snapshots[sessionID]
	if !ok {
		return domain.Product{}, false
	}
	for _, p := range snap.products {
		if p.ID == productID {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Forget discards a session's catalog snapshot, cancelling any in-flight
// fetch. Called on logout.
func (m *ProductManager) Forget(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if snap, ok := m.snapshots[sessionID]; ok {
		if snap.cancel != nil {
			snap.cancel()
		}
		delete(m.snapshots, sessionID)
	}
}

// PurchaseManager is a thin pass-through to the backend's purchases resource.
type PurchaseManager struct {
	gw     ports.PurchaseGateway
	logger zerolog.Logger
}

func NewPurchaseManager(gw ports.PurchaseGateway, logger zerolog.Logger) *PurchaseManager {
	return &PurchaseManager{gw: gw, logger: logger}
}

func (m *PurchaseManager) List(ctx context.Context) ([]domain.Purchase, error) {
	return m.gw.ListPurchases(ctx)
}

func (m *PurchaseManager) Create(ctx context.Context, in ports.PurchaseInput) (domain.Purchase, error) {
	if in.Quantity < 1 {
		return domain.Purchase{}, domain.ErrInvalidInput
	}
	p, err := m.gw.CreatePurchase(ctx, in)
	if err != nil {
		return domain.Purchase{}, err
	}
	m.logger.Info().Int64("purchase_id", p.ID).Int64("product_id", p.ProductID).Int("quantity", p.Quantity).Msg("purchase recorded")
	return p, nil
}
