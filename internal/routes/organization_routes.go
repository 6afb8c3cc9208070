package routes

import (
	"idrive/internal/controllers"
	"idrive/internal/middleware"

	"github.com/gin-gonic/gin"
)

func OrganizationRoutes(r *gin.Engine) {
	org := r.Group("/api/organization")

	// public signup
	org.POST("", controllers.CreateOrganizationSignup)

	scoped := org.Group("")
	scoped.Use(middleware.Authenticate(), middleware.RequireOrganization())
	{
		scoped.PATCH("", controllers.UpdateOrganizationSelf)

		scoped.GET("/driver", controllers.OrgListDrivers)
		scoped.GET("/driver/:driverId", controllers.OrgGetDriver)
		scoped.POST("/driver", controllers.OrgCreateDriver)
		scoped.PATCH("/driver/:driverId", controllers.OrgUpdateDriver)
		scoped.DELETE("/driver/:driverId", controllers.OrgDeleteDriver)

		scoped.GET("/student", controllers.OrgListStudents)
		scoped.GET("/student/:studentId", controllers.OrgGetStudent)
		scoped.POST("/student", controllers.OrgCreateStudent)
		scoped.PATCH("/student/:studentId", controllers.OrgUpdateStudent)
		scoped.DELETE("/student/:studentId", controllers.OrgDeleteStudent)

		scoped.GET("/attendance", controllers.OrgListAttendance)
		scoped.PATCH("/attendance/:attendanceId", controllers.OrgUpdateAttendance)
		scoped.DELETE("/attendance/:attendanceId", controllers.OrgDeleteAttendance)
	}
}
