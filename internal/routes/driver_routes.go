package routes

import (
	"idrive/internal/controllers"
	"idrive/internal/middleware"

	"github.com/gin-gonic/gin"
)

func DriverRoutes(r *gin.Engine) {
	driver := r.Group("/api/driver")
	driver.Use(middleware.Authenticate(), middleware.RequireDriver())
	{
		driver.GET("/expense", controllers.DriverListExpenses)
		driver.POST("/expense", controllers.DriverCreateExpense)
		driver.PATCH("/expense/:expenseId", controllers.DriverUpdateExpense)

		driver.POST("/attendance", controllers.DriverCreateAttendance)
		driver.GET("/attendance", controllers.DriverListAttendance)
		driver.PATCH("/attendance/:attendanceId", controllers.DriverUpdateAttendance)
		driver.DELETE("/attendance/:attendanceId", controllers.DriverDeleteAttendance)

		driver.GET("/student", controllers.DriverListStudents)
		driver.GET("/student/:studentId", controllers.DriverGetStudent)
		driver.POST("/student", controllers.DriverCreateStudent)
		driver.PATCH("/student/:studentId", controllers.DriverUpdateStudent)
		driver.DELETE("/student/:studentId", controllers.DriverDeleteStudent)
	}
}
