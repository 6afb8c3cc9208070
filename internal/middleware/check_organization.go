package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"idrive/internal/models"
	"idrive/internal/stores"
)

// RequireOrganization resolves the acting organization by verified phone
// number. Inactive organizations are rejected.
func RequireOrganization() gin.HandlerFunc {
	return func(c *gin.Context) {
		active := true
		orgs, err := stores.OrganizationsByFilter(stores.OrganizationFilter{
			PhoneNumber: Phone(c),
			Active:      &active,
		})
		if err != nil {
			logrus.WithError(err).Error("organization role lookup failed")
		}
		if err != nil || len(orgs) == 0 || orgs[0].Profile != models.ProfileOrganization {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": notAuthorizedMsg,
			})
			return
		}
		c.Set(actorKey, orgs[0])
		c.Next()
	}
}

// ActingOrganization returns the organization attached by RequireOrganization.
func ActingOrganization(c *gin.Context) models.Organization {
	return c.MustGet(actorKey).(models.Organization)
}
