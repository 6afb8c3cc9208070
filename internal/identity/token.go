package identity

import (
	"errors"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"idrive/internal/config"
)

// ErrUnauthenticated covers every credential failure uniformly; callers are
// not told whether a token was missing, malformed or expired.
var ErrUnauthenticated = errors.New("unauthenticated")

// VerifyIDToken checks a bearer credential issued by the identity provider
// and returns the canonical phone number from its verified claim.
func VerifyIDToken(tokenStr string) (uint64, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.IdentitySecret()), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return 0, ErrUnauthenticated
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrUnauthenticated
	}
	raw, _ := claims["phone_number"].(string)
	phone, err := PhoneNumber(raw)
	if err != nil {
		return 0, ErrUnauthenticated
	}
	return phone, nil
}

// PhoneNumber normalizes a verified phone claim ("+919876543210") to its
// last 10 digits as a number.
func PhoneNumber(claim string) (uint64, error) {
	var b strings.Builder
	for _, r := range claim {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) < 10 {
		return 0, errors.New("phone claim has fewer than 10 digits")
	}
	return strconv.ParseUint(digits[len(digits)-10:], 10, 64)
}
