package identity

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"idrive/internal/config"
)

func mintToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestVerifyIDToken(t *testing.T) {
	t.Setenv("IDENTITY_JWT_SECRET", "test-secret")

	signed := mintToken(t, jwt.MapClaims{
		"phone_number": "+919876543210",
		"exp":          time.Now().Add(time.Hour).Unix(),
	}, config.IdentitySecret())

	phone, err := VerifyIDToken(signed)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if phone != 9876543210 {
		t.Fatalf("expected phone 9876543210, got %d", phone)
	}
}

func TestVerifyIDTokenExpired(t *testing.T) {
	t.Setenv("IDENTITY_JWT_SECRET", "test-secret")

	signed := mintToken(t, jwt.MapClaims{
		"phone_number": "+919876543210",
		"exp":          time.Now().Add(-time.Hour).Unix(),
	}, config.IdentitySecret())

	if _, err := VerifyIDToken(signed); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestVerifyIDTokenBadSignature(t *testing.T) {
	t.Setenv("IDENTITY_JWT_SECRET", "test-secret")

	signed := mintToken(t, jwt.MapClaims{
		"phone_number": "+919876543210",
		"exp":          time.Now().Add(time.Hour).Unix(),
	}, "some-other-secret")

	if _, err := VerifyIDToken(signed); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestVerifyIDTokenGarbage(t *testing.T) {
	if _, err := VerifyIDToken("not-a-token"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestVerifyIDTokenMissingPhoneClaim(t *testing.T) {
	t.Setenv("IDENTITY_JWT_SECRET", "test-secret")

	signed := mintToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}, config.IdentitySecret())

	if _, err := VerifyIDToken(signed); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestPhoneNumber(t *testing.T) {
	cases := []struct {
		claim string
		want  uint64
	}{
		{"+919876543210", 9876543210},
		{"9876543210", 9876543210},
		{"+1 (987) 654-3210", 9876543210},
		{"00919876543210", 9876543210},
	}
	for _, tc := range cases {
		got, err := PhoneNumber(tc.claim)
		if err != nil {
			t.Fatalf("PhoneNumber(%q) error: %v", tc.claim, err)
		}
		if got != tc.want {
			t.Fatalf("PhoneNumber(%q) = %d, want %d", tc.claim, got, tc.want)
		}
	}
}

func TestPhoneNumberTooShort(t *testing.T) {
	if _, err := PhoneNumber("12345"); err == nil {
		t.Fatalf("expected error for short claim")
	}
	if _, err := PhoneNumber(""); err == nil {
		t.Fatalf("expected error for empty claim")
	}
}
