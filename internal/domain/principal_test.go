package domain

import (
	"errors"
	"testing"
)

func TestRoleAllows(t *testing.T) {
	tests := []struct {
		role Role
		min  Role
		want bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleViewer, true},
		{RoleAccountant, RoleAccountant, true},
		{RoleAccountant, RoleAdmin, false},
		{RoleViewer, RoleAccountant, false},
		{Role("ghost"), RoleViewer, false},
	}

	for _, tt := range tests {
		if got := tt.role.Allows(tt.min); got != tt.want {
			t.Fatalf("%s.Allows(%s) = %v, want %v", tt.role, tt.min, got, tt.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole("accountant"); err != nil || r != RoleAccountant {
		t.Fatalf("unexpected %q (%v)", r, err)
	}
	if _, err := ParseRole("root"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
