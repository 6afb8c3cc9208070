package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"idrive/internal/middleware"
	"idrive/internal/models"
	"idrive/internal/stores"
)

const (
	studentNotInOrgMsg   = "student for this attendance record doesn't exist for organization."
	ownershipMismatchMsg = "Student for this attendance record doesn't belong to your organization."
)

// belongsTo reports whether the student's organization reference matches the
// given organization identifier. Identifiers are compared by value.
func belongsTo(student models.Student, orgID string) bool {
	return student.OrganizationID != nil && *student.OrganizationID == orgID
}

// CreateOrganizationSignup registers an organization from the public signup
// page: inactive and unapproved until an admin steps in. Any profile tag in
// the body is ignored.
func CreateOrganizationSignup(c *gin.Context) {
	var input createOrganizationInput
	if !bindJSON(c, &input) {
		return
	}

	joinedFrom := models.JoinedFromSignupPage
	org := models.Organization{
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		Address:     input.Address,
		Pincode:     input.Pincode,
		City:        input.City,
		State:       input.State,
		Details:     input.Details,
		License:     input.License,
		JoinedFrom:  &joinedFrom,
		Active:      false,
		Approved:    false,
	}
	if err := stores.CreateOrganization(&org); err != nil {
		serverError(c, "error while creating organization while signing up", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Organization Created succesfully."})
}

// updateOrganizationSelfInput is the self-service slice of the organization
// record: profile fields only. Activation, approval and OTP state are admin
// grants and never bind here.
type updateOrganizationSelfInput struct {
	Name    *string  `json:"name"`
	Email   *string  `json:"email" binding:"omitempty,email"`
	Address *string  `json:"address"`
	Pincode *int     `json:"pincode"`
	City    *string  `json:"city"`
	State   *string  `json:"state"`
	Details *string  `json:"details"`
	License *string  `json:"license"`
	Photos  []string `json:"photos"`
}

func (in updateOrganizationSelfInput) changes() map[string]interface{} {
	ch := map[string]interface{}{}
	if in.Name != nil {
		ch["name"] = *in.Name
	}
	if in.Email != nil {
		ch["email"] = *in.Email
	}
	if in.Address != nil {
		ch["address"] = *in.Address
	}
	if in.Pincode != nil {
		ch["pincode"] = *in.Pincode
	}
	if in.City != nil {
		ch["city"] = *in.City
	}
	if in.State != nil {
		ch["state"] = *in.State
	}
	if in.Details != nil {
		ch["details"] = *in.Details
	}
	if in.License != nil {
		ch["license"] = *in.License
	}
	if in.Photos != nil {
		ch["photos"] = pq.StringArray(in.Photos)
	}
	return ch
}

// UpdateOrganizationSelf lets the acting organization patch its own record.
func UpdateOrganizationSelf(c *gin.Context) {
	var input updateOrganizationSelfInput
	if !bindJSON(c, &input) {
		return
	}

	actor := middleware.ActingOrganization(c)
	org, err := stores.UpdateOrganizationByFilter(stores.OrganizationFilter{ID: actor.ID}, input.changes())
	if err != nil {
		serverError(c, "error while updating organization", err)
		return
	}
	if org == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "not found",
			"message": "Organization not found OR update failed. Please contact admin if issue persists.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Organization updated succesfully.", "data": org})
}

// OrgListDrivers lists the acting organization's drivers.
func OrgListDrivers(c *gin.Context) {
	actor := middleware.ActingOrganization(c)
	drivers, err := stores.DriversByFilter(stores.DriverFilter{OrganizationID: actor.ID})
	if err != nil {
		serverError(c, "error while getting drivers list", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Drivers List.", "data": drivers})
}

func OrgGetDriver(c *gin.Context) {
	actor := middleware.ActingOrganization(c)
	drivers, err := stores.DriverDetailsByFilter(stores.DriverFilter{
		ID:             c.Param("driverId"),
		OrganizationID: actor.ID,
	})
	if err != nil {
		serverError(c, "error while getting driver details", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Drivers details.", "data": drivers})
}

type orgCreateDriverInput struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber uint64 `json:"phoneNumber" binding:"required"`
}

// OrgCreateDriver creates a driver owned by the acting organization.
func OrgCreateDriver(c *gin.Context) {
	var input orgCreateDriverInput
	if !bindJSON(c, &input) {
		return
	}

	actor := middleware.ActingOrganization(c)
	driver := models.Driver{
		OrganizationID: &actor.ID,
		Name:           input.Name,
		PhoneNumber:    input.PhoneNumber,
	}
	if err := stores.CreateDriver(&driver); err != nil {
		serverError(c, "error while creating driver for organization", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Driver Created succesfully."})
}

// OrgUpdateDriver patches a driver; the ownership predicate rides in the
// update filter, so a driver of another organization is simply not found.
func OrgUpdateDriver(c *gin.Context) {
	var input updateDriverInput
	if !bindJSON(c, &input) {
		return
	}
	// organization reassignment is an admin operation
	input.OrganizationID = nil

	actor := middleware.ActingOrganization(c)
	driver, err := stores.UpdateDriverByFilter(stores.DriverFilter{
		ID:             c.Param("driverId"),
		OrganizationID: actor.ID,
	}, input.changes())
	if err != nil {
		serverError(c, "error while updating driver for organization", err)
		return
	}
	if driver == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "not found",
			"message": "Driver not found OR update failed. Please contact admin if issue persists.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Driver updated succesfully."})
}

func OrgDeleteDriver(c *gin.Context) {
	actor := middleware.ActingOrganization(c)
	rows, err := stores.DeleteDriverByFilter(stores.DriverFilter{
		ID:             c.Param("driverId"),
		OrganizationID: actor.ID,
	})
	if err != nil {
		serverError(c, "error while deleting driver for organization", err)
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found", "message": "Driver not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Driver Deleted succesfully."})
}

// OrgListStudents lists the acting organization's students.
func OrgListStudents(c *gin.Context) {
	actor := middleware.ActingOrganization(c)
	students, err := stores.StudentDetailsByFilter(stores.StudentFilter{OrganizationID: actor.ID})
	if err != nil {
		serverError(c, "error while getting students for organization", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Students List.", "data": students})
}

func OrgGetStudent(c *gin.Context) {
	students, err := stores.StudentDetailsByFilter(stores.StudentFilter{ID: c.Param("studentId")})
	if err != nil {
		serverError(c, "error while getting student by Id", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Students details.", "data": students})
}

type orgCreateStudentInput struct {
	Name        string  `json:"name" binding:"required"`
	PhoneNumber uint64  `json:"phoneNumber" binding:"required"`
	DefaultTime *string `json:"defaultTime"`
}

// OrgCreateStudent creates a student owned by the acting organization;
// status defaults to ONBOARDED.
func OrgCreateStudent(c *gin.Context) {
	var input orgCreateStudentInput
	if !bindJSON(c, &input) {
		return
	}

	actor := middleware.ActingOrganization(c)
	student := models.Student{
		OrganizationID: &actor.ID,
		Name:           input.Name,
		PhoneNumber:    input.PhoneNumber,
		DefaultTime:    input.DefaultTime,
	}
	if err := stores.CreateStudent(&student); err != nil {
		serverError(c, "error while creating student for organization", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Student Created succesfully."})
}

func OrgUpdateStudent(c *gin.Context) {
	var input updateStudentInput
	if !bindJSON(c, &input) {
		return
	}
	// organization reassignment is an admin operation
	input.OrganizationID = nil

	actor := middleware.ActingOrganization(c)
	student, err := stores.UpdateStudentByFilter(stores.StudentFilter{
		ID:             c.Param("studentId"),
		OrganizationID: actor.ID,
	}, input.changes())
	if err != nil {
		serverError(c, "error while updating student for organization", err)
		return
	}
	if student == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "not found",
			"message": "Student not found OR update failed. Please contact admin if issue persists.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Student updated succesfully."})
}

func OrgDeleteStudent(c *gin.Context) {
	actor := middleware.ActingOrganization(c)
	rows, err := stores.DeleteStudentByFilter(stores.StudentFilter{
		ID:             c.Param("studentId"),
		OrganizationID: actor.ID,
	})
	if err != nil {
		serverError(c, "error while deleting student for organization", err)
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found", "message": "Student not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Student Deleted succesfully."})
}

// OrgListAttendance returns a student's trip records after confirming that
// the student belongs to the acting organization.
func OrgListAttendance(c *gin.Context) {
	studentID, ok := c.GetQuery("studentId")
	if !ok || studentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "validation failed",
			"errors":  []string{"Student Id field is required"},
		})
		return
	}

	actor := middleware.ActingOrganization(c)
	students, err := stores.StudentsByFilter(stores.StudentFilter{ID: studentID})
	if err != nil {
		serverError(c, "error while getting attendance for organization", err)
		return
	}
	if len(students) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": studentNotInOrgMsg, "message": studentNotInOrgMsg})
		return
	}
	if !belongsTo(students[0], actor.ID) {
		logrus.Warn("organization to student mapping doesn't exist")
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "student-organization mapping not found.",
			"message": ownershipMismatchMsg,
		})
		return
	}

	records, err := stores.AttendanceDetailsByFilter(stores.AttendanceFilter{StudentID: studentID})
	if err != nil {
		serverError(c, "error while getting attendance for organization", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Attendance List.", "data": records})
}

// resolveOwnedAttendance walks the Attendance -> Student -> Organization
// chain for a mutation. It only picks the precise error for the response;
// the mutation itself re-checks ownership inside its own filter.
func resolveOwnedAttendance(c *gin.Context, attendanceID, orgID string) bool {
	records, err := stores.AttendancesByFilter(stores.AttendanceFilter{ID: attendanceID})
	if err != nil {
		serverError(c, "error while loading attendance for organization", err)
		return false
	}
	if len(records) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Attendance record not found for organization.",
			"message": "Attendance record not found for organization.",
		})
		return false
	}

	if records[0].StudentID == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": studentNotInOrgMsg, "message": studentNotInOrgMsg})
		return false
	}
	students, err := stores.StudentsByFilter(stores.StudentFilter{ID: *records[0].StudentID})
	if err != nil {
		serverError(c, "error while loading student for organization", err)
		return false
	}
	if len(students) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": studentNotInOrgMsg, "message": studentNotInOrgMsg})
		return false
	}

	if !belongsTo(students[0], orgID) {
		logrus.Warn("organization to student mapping doesn't exist")
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "student-organization mapping not found.",
			"message": ownershipMismatchMsg,
		})
		return false
	}

	return true
}

func OrgUpdateAttendance(c *gin.Context) {
	var input updateAttendanceInput
	if !bindJSON(c, &input) {
		return
	}

	actor := middleware.ActingOrganization(c)
	attendanceID := c.Param("attendanceId")
	if !resolveOwnedAttendance(c, attendanceID, actor.ID) {
		return
	}

	attendance, err := stores.UpdateAttendanceOwnedBy(actor.ID, attendanceID, input.changes())
	if err != nil {
		serverError(c, "error while updating attendance for organization", err)
		return
	}
	if attendance == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "not found",
			"message": "Attendance not found OR update failed. Please contact admin if issue persists.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Attendance updated succesfully."})
}

func OrgDeleteAttendance(c *gin.Context) {
	actor := middleware.ActingOrganization(c)
	attendanceID := c.Param("attendanceId")
	if !resolveOwnedAttendance(c, attendanceID, actor.ID) {
		return
	}

	rows, err := stores.DeleteAttendanceOwnedBy(actor.ID, attendanceID)
	if err != nil {
		serverError(c, "error while deleting attendance for organization", err)
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found", "message": "Attendance record not found for organization."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Attendance Deleted succesfully."})
}
