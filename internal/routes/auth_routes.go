package routes

import (
	"idrive/internal/controllers"
	"idrive/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/check-owner-existence", controllers.CheckOwnerExistence)
		auth.GET("/owner-details", middleware.Authenticate(), controllers.OwnerDetails)
		auth.POST("/refresh-token", controllers.RefreshToken)
	}
}
