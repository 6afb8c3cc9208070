package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/spf13/cast"

	"idrive/internal/config"
	"idrive/internal/middleware"
	"idrive/internal/models"
	"idrive/internal/stores"
)

// ListAdmins returns every admin record.
func ListAdmins(c *gin.Context) {
	admins, err := stores.AdminsByFilter(stores.AdminFilter{})
	if err != nil {
		serverError(c, "error while getting admins list - Admin", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "admins List - Admin.", "data": admins})
}

type createAdminInput struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber uint64 `json:"phoneNumber" binding:"required"`
}

// CreateAdmin registers a new admin. Beyond the admin role itself the caller
// must present the shared pin as a query parameter.
func CreateAdmin(c *gin.Context) {
	var input createAdminInput
	if !bindJSON(c, &input) {
		return
	}

	if !config.CheckAdminPin(c.Query("pin")) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Wrong Pin."})
		return
	}

	admin := models.Admin{Name: input.Name, PhoneNumber: input.PhoneNumber}
	if err := stores.CreateAdmin(&admin); err != nil {
		serverError(c, "error while creating admin - Admin", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "admin Created succesfully - Admin."})
}

// DeleteAdmin removes an admin by id, gated by the same shared pin.
func DeleteAdmin(c *gin.Context) {
	if !config.CheckAdminPin(c.Query("pin")) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Wrong Pin."})
		return
	}

	rows, err := stores.DeleteAdminByFilter(stores.AdminFilter{ID: c.Param("adminId")})
	if err != nil {
		serverError(c, "error while deleting admin - Admin", err)
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found", "message": "Admin not found - Admin."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin Deleted succesfully - Admin."})
}

// AdminListOrganizations lists organizations, optionally narrowed by the
// approved flag and the signup source.
func AdminListOrganizations(c *gin.Context) {
	filter := stores.OrganizationFilter{}
	if v, ok := c.GetQuery("approved"); ok {
		approved := cast.ToBool(v)
		filter.Approved = &approved
	}
	if v, ok := c.GetQuery("joinedFrom"); ok {
		joinedFrom := models.JoinedFrom(v)
		if !joinedFrom.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "validation failed",
				"errors":  []string{"Joined From must be one of SIGNUP_PAGE ADMIN_DASHBOARD."},
			})
			return
		}
		filter.JoinedFrom = joinedFrom
	}

	orgs, err := stores.OrganizationsByFilter(filter)
	if err != nil {
		serverError(c, "error while getting organizations list - Admin", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Organizations List - Admin.", "data": orgs})
}

func AdminGetOrganization(c *gin.Context) {
	orgs, err := stores.OrganizationsByFilter(stores.OrganizationFilter{ID: c.Param("organizationId")})
	if err != nil {
		serverError(c, "error while getting Organization Details - Admin", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Organizations Details - Admin.", "data": orgs})
}

type createOrganizationInput struct {
	Name        string  `json:"name" binding:"required"`
	PhoneNumber uint64  `json:"phoneNumber" binding:"required"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Address     string  `json:"address" binding:"required"`
	Pincode     int     `json:"pincode" binding:"required"`
	City        string  `json:"city" binding:"required"`
	State       string  `json:"state" binding:"required"`
	Details     *string `json:"details"`
	License     *string `json:"license"`
}

// AdminCreateOrganization creates an organization from the admin dashboard:
// pre-approved, still inactive, stamped with the approving admin.
func AdminCreateOrganization(c *gin.Context) {
	var input createOrganizationInput
	if !bindJSON(c, &input) {
		return
	}

	actor := middleware.ActingAdmin(c)
	joinedFrom := models.JoinedFromAdminDashboard
	org := models.Organization{
		Name:         input.Name,
		PhoneNumber:  input.PhoneNumber,
		Email:        input.Email,
		Address:      input.Address,
		Pincode:      input.Pincode,
		City:         input.City,
		State:        input.State,
		Details:      input.Details,
		License:      input.License,
		JoinedFrom:   &joinedFrom,
		ApprovedByID: &actor.ID,
		Approved:     true,
		Active:       false,
	}
	if err := stores.CreateOrganization(&org); err != nil {
		serverError(c, "error while creating organization - Admin", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Organization Created succesfully - Admin."})
}

type updateOrganizationInput struct {
	Name        *string  `json:"name"`
	Email       *string  `json:"email" binding:"omitempty,email"`
	Active      *bool    `json:"active"`
	Approved    *bool    `json:"approved"`
	OtpVerified *bool    `json:"otpVerified"`
	Address     *string  `json:"address"`
	Pincode     *int     `json:"pincode"`
	City        *string  `json:"city"`
	State       *string  `json:"state"`
	Details     *string  `json:"details"`
	License     *string  `json:"license"`
	Photos      []string `json:"photos"`
}

func (in updateOrganizationInput) changes() map[string]interface{} {
	ch := map[string]interface{}{}
	if in.Name != nil {
		ch["name"] = *in.Name
	}
	if in.Email != nil {
		ch["email"] = *in.Email
	}
	if in.Active != nil {
		ch["active"] = *in.Active
	}
	if in.Approved != nil {
		ch["approved"] = *in.Approved
	}
	if in.OtpVerified != nil {
		ch["otp_verified"] = *in.OtpVerified
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

func AdminUpdateOrganization(c *gin.Context) {
	var input updateOrganizationInput
	if !bindJSON(c, &input) {
		return
	}

	org, err := stores.UpdateOrganizationByFilter(
		stores.OrganizationFilter{ID: c.Param("organizationId")}, input.changes())
	if err != nil {
		serverError(c, "error while updating organization - Admin", err)
		return
	}
	if org == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "not found",
			"message": "Organization not found OR update failed. Please contact admin if issue persists. - Admin.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Organization updated succesfully.", "data": org})
}

// AdminListDrivers lists drivers, optionally for one organization.
func AdminListDrivers(c *gin.Context) {
	drivers, err := stores.DriverDetailsByFilter(stores.DriverFilter{OrganizationID: c.Query("organizationId")})
	if err != nil {
		serverError(c, "error while getting drivers list - Admin", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Drivers List - Admin.", "data": drivers})
}

func AdminGetDriver(c *gin.Context) {
	drivers, err := stores.DriverDetailsByFilter(stores.DriverFilter{ID: c.Param("driverId")})
	if err != nil {
		serverError(c, "error while getting drivers details - Admin", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Drivers details - Admin.", "data": drivers})
}

type createDriverInput struct {
	OrganizationID *string `json:"organizationId"`
	Name           string  `json:"name" binding:"required"`
	PhoneNumber    uint64  `json:"phoneNumber" binding:"required"`
}

func AdminCreateDriver(c *gin.Context) {
	var input createDriverInput
	if !bindJSON(c, &input) {
		return
	}

	driver := models.Driver{
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		PhoneNumber:    input.PhoneNumber,
	}
	if err := stores.CreateDriver(&driver); err != nil {
		serverError(c, "error while creating driver - Admin", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Driver Created succesfully - Admin."})
}

type updateDriverInput struct {
	Name           *string `json:"name"`
	PhoneNumber    *uint64 `json:"phoneNumber"`
	OrganizationID *string `json:"organizationId"`
	Disabled       *bool   `json:"disabled"`
}

func (in updateDriverInput) changes() map[string]interface{} {
	ch := map[string]interface{}{}
	if in.Name != nil {
		ch["name"] = *in.Name
	}
	if in.PhoneNumber != nil {
		ch["phone_number"] = *in.PhoneNumber
	}
	if in.OrganizationID != nil {
		ch["organization_id"] = *in.OrganizationID
	}
	if in.Disabled != nil {
		ch["disabled"] = *in.Disabled
	}
	return ch
}

func AdminUpdateDriver(c *gin.Context) {
	var input updateDriverInput
	if !bindJSON(c, &input) {
		return
	}

	driver, err := stores.UpdateDriverByFilter(stores.DriverFilter{ID: c.Param("driverId")}, input.changes())
	if err != nil {
		serverError(c, "error while updating driver - Admin", err)
		return
	}
	if driver == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "not found",
			"message": "Driver not found OR update failed. Please contact admin if issue persists - Admin.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Driver updated succesfully - Admin."})
}

func AdminDeleteDriver(c *gin.Context) {
	rows, err := stores.DeleteDriverByFilter(stores.DriverFilter{ID: c.Param("driverId")})
	if err != nil {
		serverError(c, "error while deleting driver - Admin", err)
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found", "message": "Driver not found - Admin."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Driver Deleted succesfully - Admin."})
}

// AdminListStudents lists students, optionally for one organization.
func AdminListStudents(c *gin.Context) {
	students, err := stores.StudentDetailsByFilter(stores.StudentFilter{OrganizationID: c.Query("organizationId")})
	if err != nil {
		serverError(c, "error while getting students list - Admin", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Students List - Admin.", "data": students})
}

func AdminGetStudent(c *gin.Context) {
	students, err := stores.StudentDetailsByFilter(stores.StudentFilter{ID: c.Param("studentId")})
	if err != nil {
		serverError(c, "error while getting student by Id - Admin", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Students details - Admin.", "data": students})
}

type createStudentInput struct {
	OrganizationID *string `json:"organizationId"`
	Name           string  `json:"name" binding:"required"`
	PhoneNumber    uint64  `json:"phoneNumber" binding:"required"`
	DefaultTime    *string `json:"defaultTime"`
}

// AdminCreateStudent creates a student; status defaults to ONBOARDED.
func AdminCreateStudent(c *gin.Context) {
	var input createStudentInput
	if !bindJSON(c, &input) {
		return
	}

	student := models.Student{
		OrganizationID: input.OrganizationID,
		Name:           input.Name,
		PhoneNumber:    input.PhoneNumber,
		DefaultTime:    input.DefaultTime,
	}
	if err := stores.CreateStudent(&student); err != nil {
		serverError(c, "error while creating student - Admin", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Student Created succesfully - Admin."})
}

type updateStudentInput struct {
	Name           *string               `json:"name"`
	PhoneNumber    *uint64               `json:"phoneNumber"`
	Status         *models.StudentStatus `json:"status" binding:"omitempty,oneof=ONBOARDED INPROGRESS COMPLETED"`
	Disabled       *bool                 `json:"disabled"`
	OrganizationID *string               `json:"organizationId"`
	DefaultTime    *string               `json:"defaultTime"`
}

func (in updateStudentInput) changes() map[string]interface{} {
	ch := map[string]interface{}{}
	if in.Name != nil {
		ch["name"] = *in.Name
	}
	if in.PhoneNumber != nil {
		ch["phone_number"] = *in.PhoneNumber
	}
	if in.Status != nil {
		ch["status"] = *in.Status
	}
	if in.Disabled != nil {
		ch["disabled"] = *in.Disabled
	}
	if in.OrganizationID != nil {
		ch["organization_id"] = *in.OrganizationID
	}
	if in.DefaultTime != nil {
		ch["default_time"] = *in.DefaultTime
	}
	return ch
}

func AdminUpdateStudent(c *gin.Context) {
	var input updateStudentInput
	if !bindJSON(c, &input) {
		return
	}

	student, err := stores.UpdateStudentByFilter(stores.StudentFilter{ID: c.Param("studentId")}, input.changes())
	if err != nil {
		serverError(c, "error while updating student - Admin", err)
		return
	}
	if student == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "not found",
			"message": "Student not found OR update failed. Please contact admin if issue persists - Admin.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Student updated succesfully - Admin."})
}

func AdminDeleteStudent(c *gin.Context) {
	rows, err := stores.DeleteStudentByFilter(stores.StudentFilter{ID: c.Param("studentId")})
	if err != nil {
		serverError(c, "error while deleting student - Admin", err)
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found", "message": "Student not found - Admin."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Student Deleted succesfully - Admin."})
}

// AdminListAttendance returns every trip record for a student.
func AdminListAttendance(c *gin.Context) {
	studentID, ok := c.GetQuery("studentId")
	if !ok || studentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "validation failed",
			"errors":  []string{"Student Id field is required"},
		})
		return
	}

	records, err := stores.AttendanceDetailsByFilter(stores.AttendanceFilter{StudentID: studentID})
	if err != nil {
		serverError(c, "error while getting attendance - Admin", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Attendance List - Admin.", "data": records})
}

type updateAttendanceInput struct {
	KmDriven      *int                     `json:"kmDriven"`
	Status        *models.AttendanceStatus `json:"status" binding:"omitempty,oneof=STARTED COMPLETED"`
	ClassType     *string                  `json:"classType"`
	StartingMeter *int                     `json:"startingMeter"`
	EndingMeter   *int                     `json:"endingMeter"`
}

func (in updateAttendanceInput) changes() map[string]interface{} {
	ch := map[string]interface{}{}
	if in.KmDriven != nil {
		ch["km_driven"] = *in.KmDriven
	}
	if in.Status != nil {
		ch["status"] = *in.Status
	}
	if in.ClassType != nil {
		ch["class_type"] = *in.ClassType
	}
	if in.StartingMeter != nil {
		ch["starting_meter"] = *in.StartingMeter
	}
	if in.EndingMeter != nil {
		ch["ending_meter"] = *in.EndingMeter
	}
	return ch
}

func AdminUpdateAttendance(c *gin.Context) {
	var input updateAttendanceInput
	if !bindJSON(c, &input) {
		return
	}

	attendance, err := stores.UpdateAttendanceByFilter(
		stores.AttendanceFilter{ID: c.Param("attendanceId")}, input.changes())
	if err != nil {
		serverError(c, "error while updating attendance - Admin", err)
		return
	}
	if attendance == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "not found",
			"message": "Attendance not found OR update failed. Please contact admin if issue persists - Admin.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Attendance updated succesfully - Admin."})
}

func AdminDeleteAttendance(c *gin.Context) {
	rows, err := stores.DeleteAttendanceByFilter(stores.AttendanceFilter{ID: c.Param("attendanceId")})
	if err != nil {
		serverError(c, "error while deleting attendance - Admin", err)
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found", "message": "Attendance not found - Admin."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Attendance Deleted succesfully - Admin."})
}

// AdminListExpenses returns an organization's expenses with drivers loaded.
func AdminListExpenses(c *gin.Context) {
	orgID, ok := c.GetQuery("organizationId")
	if !ok || orgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "validation failed",
			"errors":  []string{"Organization Id field is required"},
		})
		return
	}

	expenses, err := stores.ExpenseDetailsByFilter(stores.ExpenseFilter{OrganizationID: orgID})
	if err != nil {
		serverError(c, "error while getting expenses - Admin", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Expenses List for org - Admin.", "data": expenses})
}
