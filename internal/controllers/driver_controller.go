package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"idrive/internal/middleware"
	"idrive/internal/models"
	"idrive/internal/stores"
)

// dayWindow returns the inclusive bounds of the calendar day containing now.
func dayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// DriverListExpenses lists the expenses of the driver's organization.
func DriverListExpenses(c *gin.Context) {
	actor := middleware.ActingDriver(c)
	if actor.OrganizationID == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Expense list.", "data": []models.Expense{}})
		return
	}

	expenses, err := stores.ExpensesByFilter(stores.ExpenseFilter{OrganizationID: *actor.OrganizationID})
	if err != nil {
		serverError(c, "error while getting expense list", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Expense list.", "data": expenses})
}

type expenseInput struct {
	Type   string `json:"type" binding:"required"`
	Amount int    `json:"amount" binding:"required"`
}

// DriverCreateExpense records an expense against the driver and their
// organization.
func DriverCreateExpense(c *gin.Context) {
	var input expenseInput
	if !bindJSON(c, &input) {
		return
	}

	actor := middleware.ActingDriver(c)
	if actor.OrganizationID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Driver is not assigned to an organization."})
		return
	}

	expense := models.Expense{
		OrganizationID: *actor.OrganizationID,
		DriverID:       &actor.ID,
		Amount:         input.Amount,
		Type:           input.Type,
	}
	if err := stores.CreateExpense(&expense); err != nil {
		serverError(c, "error while recording expense", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Expense recorded succesfully."})
}

// DriverUpdateExpense rewrites an expense's type and amount, scoped to the
// driver's organization.
func DriverUpdateExpense(c *gin.Context) {
	var input expenseInput
	if !bindJSON(c, &input) {
		return
	}

	actor := middleware.ActingDriver(c)
	if actor.OrganizationID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Driver is not assigned to an organization."})
		return
	}

	expense, err := stores.UpdateExpenseByFilter(stores.ExpenseFilter{
		ID:             c.Param("expenseId"),
		OrganizationID: *actor.OrganizationID,
	}, map[string]interface{}{
		"type":   input.Type,
		"amount": input.Amount,
	})
	if err != nil {
		serverError(c, "error while updating expense", err)
		return
	}
	if expense == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "not found",
			"message": "Expense not found OR update failed. Please contact admin if issue persists.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Expense updated succesfully."})
}

type createAttendanceInput struct {
	StudentID     string                  `json:"studentId" binding:"required"`
	KmDriven      *int                    `json:"kmDriven"`
	Status        models.AttendanceStatus `json:"status" binding:"required,oneof=STARTED COMPLETED"`
	ClassType     *string                 `json:"classType"`
	StartingMeter *int                    `json:"startingMeter"`
	EndingMeter   *int                    `json:"endingMeter"`
}

// DriverCreateAttendance records a trip for a student, stamped with the
// acting driver.
func DriverCreateAttendance(c *gin.Context) {
	var input createAttendanceInput
	if !bindJSON(c, &input) {
		return
	}

	actor := middleware.ActingDriver(c)
	attendance := models.Attendance{
		StudentID: &input.StudentID,
		DriverID:  &actor.ID,
		Status:    input.Status,
		ClassType: input.ClassType,
	}
	if input.KmDriven != nil {
		attendance.KmDriven = *input.KmDriven
	}
	if input.StartingMeter != nil {
		attendance.StartingMeter = *input.StartingMeter
	}
	if input.EndingMeter != nil {
		attendance.EndingMeter = *input.EndingMeter
	}
	if err := stores.CreateAttendance(&attendance); err != nil {
		serverError(c, "error while recording attendance", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Attendance recorded succesfully."})
}

// DriverListAttendance returns a student's trip records.
func DriverListAttendance(c *gin.Context) {
	studentID, ok := c.GetQuery("studentId")
	if !ok || studentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "validation failed",
			"errors":  []string{"Student Id field is required"},
		})
		return
	}

	records, err := stores.AttendancesByFilter(stores.AttendanceFilter{StudentID: studentID})
	if err != nil {
		serverError(c, "error while getting attendance for student - Driver", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Attendance List for student- Driver.", "data": records})
}

// DriverUpdateAttendance patches a trip record the acting driver recorded.
func DriverUpdateAttendance(c *gin.Context) {
	var input updateAttendanceInput
	if !bindJSON(c, &input) {
		return
	}

	actor := middleware.ActingDriver(c)
	attendance, err := stores.UpdateAttendanceByFilter(stores.AttendanceFilter{
		ID:       c.Param("attendanceId"),
		DriverID: actor.ID,
	}, input.changes())
	if err != nil {
		serverError(c, "error while updating attendance - Driver", err)
		return
	}
	if attendance == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "not found",
			"message": "Attendance not found OR update failed. Please contact admin if issue persists - Driver.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Attendance updated succesfully - Driver."})
}

func DriverDeleteAttendance(c *gin.Context) {
	actor := middleware.ActingDriver(c)
	rows, err := stores.DeleteAttendanceByFilter(stores.AttendanceFilter{
		ID:       c.Param("attendanceId"),
		DriverID: actor.ID,
	})
	if err != nil {
		serverError(c, "error while deleting attendance - Driver", err)
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found", "message": "Attendance not found - Driver."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Attendance Deleted succesfully - Driver."})
}

// DriverListStudents lists the students of the driver's organization,
// optionally narrowed by lifecycle status. When asking for INPROGRESS
// students, today's trip records are returned alongside so the app can show
// who has already been picked up.
func DriverListStudents(c *gin.Context) {
	actor := middleware.ActingDriver(c)
	if actor.OrganizationID == nil {
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"message":    "Students list.",
			"data":       []models.Student{},
			"attendance": []models.Attendance{},
		})
		return
	}

	filter := stores.StudentFilter{OrganizationID: *actor.OrganizationID}
	status := models.StudentStatus(c.Query("status"))
	if status != "" {
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "validation failed",
				"errors":  []string{"Status must be one of ONBOARDED INPROGRESS COMPLETED."},
			})
			return
		}
		filter.Status = status
	}

	students, err := stores.StudentsByFilter(filter)
	if err != nil {
		serverError(c, "error while getting active students", err)
		return
	}

	attendance := []models.Attendance{}
	if status == models.StudentInProgress && len(students) > 0 {
		ids := make([]string, len(students))
		for i, s := range students {
			ids[i] = s.ID
		}
		from, to := dayWindow(time.Now())
		attendance, err = stores.AttendanceDetailsByFilter(stores.AttendanceFilter{
			StudentIDs:  ids,
			CreatedFrom: &from,
			CreatedTo:   &to,
		})
		if err != nil {
			serverError(c, "error while getting today's attendance - Driver", err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Students list.",
		"data":       students,
		"attendance": attendance,
	})
}

func DriverGetStudent(c *gin.Context) {
	students, err := stores.StudentDetailsByFilter(stores.StudentFilter{ID: c.Param("studentId")})
	if err != nil {
		serverError(c, "error while getting student by Id - Driver", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Students details - Driver.", "data": students})
}

// DriverCreateStudent onboards a student mid-route: the driver's own
// organization is injected and the student starts INPROGRESS instead of
// ONBOARDED.
func DriverCreateStudent(c *gin.Context) {
	var input orgCreateStudentInput
	if !bindJSON(c, &input) {
		return
	}

	actor := middleware.ActingDriver(c)
	student := newDriverStudent(actor, input)
	if err := stores.CreateStudent(&student); err != nil {
		serverError(c, "error while creating student - Driver", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Student Created succesfully."})
}

func newDriverStudent(actor models.Driver, input orgCreateStudentInput) models.Student {
	return models.Student{
		OrganizationID: actor.OrganizationID,
		Name:           input.Name,
		PhoneNumber:    input.PhoneNumber,
		DefaultTime:    input.DefaultTime,
		Status:         models.StudentInProgress,
	}
}

// DriverUpdateStudent patches a student of the driver's organization.
func DriverUpdateStudent(c *gin.Context) {
	var input updateStudentInput
	if !bindJSON(c, &input) {
		return
	}
	input.OrganizationID = nil
	input.Disabled = nil

	actor := middleware.ActingDriver(c)
	if actor.OrganizationID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Driver is not assigned to an organization."})
		return
	}

	student, err := stores.UpdateStudentByFilter(stores.StudentFilter{
		ID:             c.Param("studentId"),
		OrganizationID: *actor.OrganizationID,
	}, input.changes())
	if err != nil {
		serverError(c, "error while updating student - Driver", err)
		return
	}
	if student == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "not found",
			"message": "Student not found OR update failed. Please contact admin if issue persists - Driver.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Student updated succesfully - Driver."})
}

func DriverDeleteStudent(c *gin.Context) {
	actor := middleware.ActingDriver(c)
	if actor.OrganizationID == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found", "message": "Student not found - Driver."})
		return
	}

	rows, err := stores.DeleteStudentByFilter(stores.StudentFilter{
		ID:             c.Param("studentId"),
		OrganizationID: *actor.OrganizationID,
	})
	if err != nil {
		serverError(c, "error while deleting student for Driver", err)
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found", "message": "Student not found - Driver."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Student Deleted succesfully."})
}
