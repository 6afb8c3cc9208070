package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"idrive/internal/models"
	"idrive/internal/stores"
)

// RequireDriver resolves the acting driver by verified phone number.
func RequireDriver() gin.HandlerFunc {
	return func(c *gin.Context) {
		drivers, err := stores.DriversByFilter(stores.DriverFilter{PhoneNumber: Phone(c)})
		if err != nil {
			logrus.WithError(err).Error("driver role lookup failed")
		}
		if err != nil || len(drivers) == 0 || drivers[0].Profile != models.ProfileDriver {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": notAuthorizedMsg,
			})
			return
		}
		c.Set(actorKey, drivers[0])
		c.Next()
	}
}

// ActingDriver returns the driver attached by RequireDriver.
func ActingDriver(c *gin.Context) models.Driver {
	return c.MustGet(actorKey).(models.Driver)
}
