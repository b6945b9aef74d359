package service

import (
	"github.com/smartinventory/pos-admin/internal/core/domain"
)

// MenuFor returns the navigation sections visible to a role. The result is
// derived purely from the role: no backend call, no per-operator state.
//
// Unknown or empty roles see only the General section, whose dashboard entry
// falls back to the admin landing path.
func MenuFor(role domain.Role) []domain.MenuSection {
	sections := []domain.MenuSection{
		{
			Title: "General",
			Items: []domain.MenuItem{
				{Label: "Dashboard", Path: role.DashboardPath()},
			},
		},
	}

	if role == domain.RoleAdmin || role == domain.RoleInventoryManager {
		sections = append(sections, domain.MenuSection{
			Title: "Inventory",
			Items: []domain.MenuItem{
				{Label: "Categories", Path: "/inventory/categories"},
				{Label: "Products", Path: "/inventory/products"},
				{Label: "Purchases", Path: "/inventory/purchases"},
			},
		})
	}

	if role == domain.RoleAdmin || role == domain.RoleSalesExecutive {
		sections = append(sections, domain.MenuSection{
			Title: "Sales",
			Items: []domain.MenuItem{
				{Label: "Point of Sale", Path: "/sales"},
			},
		})
	}

	if role == domain.RoleAdmin {
		sections = append(sections, domain.MenuSection{
			Title: "Admin",
			Items: []domain.MenuItem{
				{Label: "Users", Path: "/admin/users"},
			},
		})
	}

	return sections
}
