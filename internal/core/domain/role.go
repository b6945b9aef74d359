package domain

import "encoding/json"

// Role is the operator role carried by the backend-issued token.
type Role string

const (
	RoleAdmin            Role = "ADMIN"
	RoleInventoryManager Role = "INVENTORY_MANAGER"
	RoleSalesExecutive   Role = "SALES_EXECUTIVE"
)

// ParseRole maps a raw string to a known Role. Unknown values map to the
// empty Role rather than an error so a corrupted persisted value can never
// break session hydration.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleInventoryManager, RoleSalesExecutive:
		return Role(s)
	default:
		return ""
	}
}

// DecodePersistedRole reads a role from its persisted form. Roles are stored
// JSON-encoded (parity with the legacy browser storage format); malformed
// payloads decode to the empty Role.
func DecodePersistedRole(raw string) Role {
	if raw == "" {
		return ""
	}
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return ""
	}
	return ParseRole(s)
}

// EncodePersistedRole returns the JSON-encoded persisted form of a role.
func EncodePersistedRole(r Role) string {
	b, _ := json.Marshal(string(r))
	return string(b)
}

// DashboardPath returns the landing path for a role after login.
func (r Role) DashboardPath() string {
	switch r {
	case RoleInventoryManager:
		return "/inventory/dashboard"
	case RoleSalesExecutive:
		return "/sales"
	default:
		return "/admin/dashboard"
	}
}
