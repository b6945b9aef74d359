package ports

import (
	"context"

	"github.com/smartinventory/pos-admin/internal/core/domain"
)

// CategoryService backs the category list/drawer screens.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, in CategoryInput) (domain.Category, error)
	Update(ctx context.Context, id int64, in CategoryInput) (domain.Category, error)
	// Delete surfaces the backend's message verbatim when the category is
	// still referenced (e.g. linked with products).
	Delete(ctx context.Context, id int64) error
}

// ProductService backs the product list/drawer screens and the POS catalog.
type ProductService interface {
	List(ctx context.Context, q ProductQuery) (domain.ProductPage, error)
	Create(ctx context.Context, in ProductInput) (domain.Product, error)
	Update(ctx context.Context, id int64, in ProductInput) (domain.Product, error)
	Delete(ctx context.Context, id int64) error
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)

	// Catalog fetches the full product catalog for a POS session and caches
	// it as that session's snapshot. Concurrent fetches for one session are
	// superseded: only the newest fetch may update the snapshot.
	Catalog(ctx context.Context, sessionID, search string) ([]domain.Product, error)
}

// ProductResolver resolves a product from a session's current catalog
// snapshot. Implemented by the product service; consumed by the cart.
type ProductResolver interface {
	Resolve(sessionID string, productID int64) (domain.Product, bool)
}

// PurchaseService backs the purchase list/drawer screens.
type PurchaseService interface {
	List(ctx context.Context) ([]domain.Purchase, error)
	Create(ctx context.Context, in PurchaseInput) (domain.Purchase, error)
}
