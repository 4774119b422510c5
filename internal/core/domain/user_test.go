package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"ADMIN", "USER"} {
		role, err := ParseRole(valid)
		if err != nil {
			t.Fatalf("ParseRole(%q) returned error: %v", valid, err)
		}
		if string(role) != valid {
			t.Fatalf("ParseRole(%q) = %q", valid, role)
		}
	}
}

func TestParseRole_Invalid(t *testing.T) {
	for _, bad := range []string{"", "admin", "SUPERUSER", "User"} {
		_, err := ParseRole(bad)
		if !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("ParseRole(%q): expected ErrInvalidRole, got %v", bad, err)
		}
		if !strings.Contains(err.Error(), "ADMIN") || !strings.Contains(err.Error(), "USER") {
			t.Fatalf("error message must list valid roles, got %q", err.Error())
		}
	}
}

func TestIdentityIsAdmin(t *testing.T) {
	if !(Identity{UserID: "u1", Role: RoleAdmin}).IsAdmin() {
		t.Fatal("ADMIN identity should be admin")
	}
	if (Identity{UserID: "u2", Role: RoleUser}).IsAdmin() {
		t.Fatal("USER identity should not be admin")
	}
}
