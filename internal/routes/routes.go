package routes

import (
	"errors"
	"net/http"

	sentry "github.com/getsentry/sentry-go"
	"github.com/gin-contrib/cors"
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(ginlogger.SetLogger())
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	corsCfg.AllowHeaders = []string{
		"Origin", "X-Requested-With", "Content-Type", "Accept",
		"Authorization", "Content-Disposition", "x-auth-token",
		"baggage", "sentry-trace",
	}
	r.Use(cors.New(corsCfg))

	AuthRoutes(r)
	DriverRoutes(r)
	OrganizationRoutes(r)
	AdminRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		sentry.CaptureException(errors.New("route not found"))
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "route not found"})
	})

	return r
}
