package middleware

import (
	"net/http"

	sentry "github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"idrive/internal/identity"
)

// TokenHeader carries the identity-provider credential.
const TokenHeader = "x-auth-token"

// phoneKey is the context key for the verified phone number.
const phoneKey = "phoneNumber"

// Authenticate verifies the credential in the token header and stores the
// verified phone number in the request context. Every credential failure is
// the same 401.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "no token found, authorization denied",
			})
			return
		}

		phone, err := identity.VerifyIDToken(token)
		if err != nil {
			sentry.CaptureException(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized",
			})
			return
		}

		c.Set(phoneKey, phone)
		c.Next()
	}
}

// Phone returns the verified phone number attached by Authenticate.
func Phone(c *gin.Context) uint64 {
	return c.MustGet(phoneKey).(uint64)
}
