package models

import "testing"

func TestRoleIDForRole(t *testing.T) {
	cases := []struct {
		role string
		want uint
	}{
		{RoleAdmin, RoleIDAdmin},
		{"ADMIN", RoleIDAdmin}, // 大小写不敏感
		{"Admin", RoleIDAdmin},
		{RoleCustomer, RoleIDCustomer},
		{"", RoleIDCustomer},
		{"unknown", RoleIDCustomer},
	}

	for _, tc := range cases {
		if got := RoleIDForRole(tc.role); got != tc.want {
			t.Errorf("RoleIDForRole(%q) = %d, want %d", tc.role, got, tc.want)
		}
	}
}
