package config

import (
	"os"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestCheckAdminPinPlain(t *testing.T) {
	t.Setenv("ADMIN_PIN", "4321")

	if !CheckAdminPin("4321") {
		t.Fatalf("expected matching pin to pass")
	}
	if CheckAdminPin("9999") {
		t.Fatalf("expected wrong pin to fail")
	}
	if CheckAdminPin("") {
		t.Fatalf("expected empty pin to fail")
	}
}

func TestCheckAdminPinBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("4321"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing pin: %v", err)
	}
	t.Setenv("ADMIN_PIN", string(hash))

	if !CheckAdminPin("4321") {
		t.Fatalf("expected matching pin to pass against hash")
	}
	if CheckAdminPin("9999") {
		t.Fatalf("expected wrong pin to fail against hash")
	}
}

func TestCheckAdminPinUnconfigured(t *testing.T) {
	t.Setenv("ADMIN_PIN", "")

	if CheckAdminPin("anything") {
		t.Fatalf("an unconfigured pin must never match")
	}
}

func TestPort(t *testing.T) {
	t.Setenv("PORT", "8080")
	if got := Port(); got != 8080 {
		t.Fatalf("expected port 8080, got %d", got)
	}

	os.Unsetenv("PORT")
	if got := Port(); got != 4000 {
		t.Fatalf("expected default port 4000, got %d", got)
	}
}
