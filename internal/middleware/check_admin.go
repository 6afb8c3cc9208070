package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"idrive/internal/models"
	"idrive/internal/stores"
)

const actorKey = "actor"

const notAuthorizedMsg = "You are not authorized for this particular action."

// RequireAdmin resolves the acting admin by verified phone number. Disabled
// admins and cross-table phone collisions both fail closed with 401.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		notDisabled := false
		admins, err := stores.AdminsByFilter(stores.AdminFilter{
			PhoneNumber: Phone(c),
			Disabled:    &notDisabled,
		})
		if err != nil {
			logrus.WithError(err).Error("admin role lookup failed")
		}
		if err != nil || len(admins) == 0 || admins[0].Profile != models.ProfileAdmin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": notAuthorizedMsg,
			})
			return
		}
		c.Set(actorKey, admins[0])
		c.Next()
	}
}

// ActingAdmin returns the admin attached by RequireAdmin.
func ActingAdmin(c *gin.Context) models.Admin {
	return c.MustGet(actorKey).(models.Admin)
}
