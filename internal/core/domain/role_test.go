package domain

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"ADMIN", RoleAdmin},
		{"INVENTORY_MANAGER", RoleInventoryManager},
		{"SALES_EXECUTIVE", RoleSalesExecutive},
		{"admin", ""},
		{"", ""},
		{"MANAGER", ""},
	}
	for _, tc := range cases {
		if got := ParseRole(tc.in); got != tc.want {
			t.Errorf("ParseRole(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestPersistedRoleRoundTrip(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleInventoryManager, RoleSalesExecutive} {
		if got := DecodePersistedRole(EncodePersistedRole(r)); got != r {
			t.Errorf("round trip of %q: got %q", r, got)
		}
	}
}

func TestDecodePersistedRole_Malformed(t *testing.T) {
	cases := []string{"", "ADMIN", `{"broken`, `123`, `"UNKNOWN_ROLE"`}
	for _, raw := range cases {
		if got := DecodePersistedRole(raw); got != "" {
			t.Errorf("DecodePersistedRole(%q): expected empty role, got %q", raw, got)
		}
	}
}

func TestDashboardPath(t *testing.T) {
	cases := []struct {
		role Role
		want string
	}{
		{RoleAdmin, "/admin/dashboard"},
		{RoleInventoryManager, "/inventory/dashboard"},
		{RoleSalesExecutive, "/sales"},
		{"", "/admin/dashboard"},
	}
	for _, tc := range cases {
		if got := tc.role.DashboardPath(); got != tc.want {
			t.Errorf("DashboardPath(%q): expected %q, got %q", tc.role, tc.want, got)
		}
	}
}
