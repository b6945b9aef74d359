package ports

import (
	"context"

	"github.com/smartinventory/pos-admin/internal/core/domain"
)

// UserService backs the user management screen.
type UserService interface {
	// List refetches the user collection and replaces the screen state.
	List(ctx context.Context) ([]domain.User, error)
	Register(ctx context.Context, in RegisterUserInput) (domain.User, error)
	// SetActive flips a user's active flag optimistically: the cached row is
	// updated before the backend call and rolled back to its prior value if
	// the call fails.
	SetActive(ctx context.Context, id int64, active bool) ([]domain.User, error)
}

// DashboardService assembles the report views. Each underlying query is
// fetched in isolation; failures are recorded per section and never abort
// the whole view.
type DashboardService interface {
	Admin(ctx context.Context) domain.AdminDashboard
	Inventory(ctx context.Context) domain.InventoryDashboard
}
