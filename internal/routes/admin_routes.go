package routes

import (
	"idrive/internal/controllers"
	"idrive/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.Authenticate(), middleware.RequireAdmin())
	{
		admin.GET("", controllers.ListAdmins)
		admin.POST("", controllers.CreateAdmin)
		admin.DELETE("/:adminId", controllers.DeleteAdmin)

		admin.GET("/organization", controllers.AdminListOrganizations)
		admin.GET("/organization/:organizationId", controllers.AdminGetOrganization)
		admin.POST("/organization", controllers.AdminCreateOrganization)
		admin.PATCH("/organization/:organizationId", controllers.AdminUpdateOrganization)

		admin.GET("/driver", controllers.AdminListDrivers)
		admin.GET("/driver/:driverId", controllers.AdminGetDriver)
		admin.POST("/driver", controllers.AdminCreateDriver)
		admin.PATCH("/driver/:driverId", controllers.AdminUpdateDriver)
		admin.DELETE("/driver/:driverId", controllers.AdminDeleteDriver)

		admin.GET("/student", controllers.AdminListStudents)
		admin.GET("/student/:studentId", controllers.AdminGetStudent)
		admin.POST("/student", controllers.AdminCreateStudent)
		admin.PATCH("/student/:studentId", controllers.AdminUpdateStudent)
		admin.DELETE("/student/:studentId", controllers.AdminDeleteStudent)

		admin.GET("/attendance", controllers.AdminListAttendance)
		admin.PATCH("/attendance/:attendanceId", controllers.AdminUpdateAttendance)
		admin.DELETE("/attendance/:attendanceId", controllers.AdminDeleteAttendance)

		admin.GET("/expense", controllers.AdminListExpenses)
	}
}
