package config

import (
	"crypto/subtle"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/crypto/bcrypt"
)

// Port returns the HTTP listen port.
func Port() int {
	return cast.ToInt(getEnv("PORT", "4000"))
}

// IdentitySecret is the HMAC key the identity provider signs tokens with.
func IdentitySecret() string {
	return getEnv("IDENTITY_JWT_SECRET", "supersecret")
}

// IdentityTokenEndpoint is the provider URL used for refresh-token exchange.
func IdentityTokenEndpoint() string {
	return getEnv("IDENTITY_TOKEN_ENDPOINT", "")
}

// SentryDSN enables error reporting when set.
func SentryDSN() string {
	return getEnv("SENTRY_DSN", "")
}

// CheckAdminPin compares a caller-supplied pin against ADMIN_PIN. A stored
// value with a bcrypt prefix is treated as a hash, anything else is compared
// in constant time. An empty configured pin never matches.
func CheckAdminPin(pin string) bool {
	configured := getEnv("ADMIN_PIN", "")
	if pin == "" || configured == "" {
		return false
	}
	if strings.HasPrefix(configured, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(pin)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(pin)) == 1
}
