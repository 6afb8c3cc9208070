package models

// Profile is the role tag discriminating the actor tables.
type Profile string

const (
	ProfileAdmin        Profile = "ADMIN"
	ProfileOrganization Profile = "ORGANIZATION"
	ProfileDriver       Profile = "DRIVER"
	ProfileStudent      Profile = "STUDENT"
)

// StudentStatus tracks the student lifecycle: ONBOARDED -> INPROGRESS -> COMPLETED.
type StudentStatus string

const (
	StudentOnboarded  StudentStatus = "ONBOARDED"
	StudentInProgress StudentStatus = "INPROGRESS"
	StudentCompleted  StudentStatus = "COMPLETED"
)

func (s StudentStatus) Valid() bool {
	switch s {
	case StudentOnboarded, StudentInProgress, StudentCompleted:
		return true
	}
	return false
}

// AttendanceStatus tracks a trip: STARTED -> COMPLETED.
type AttendanceStatus string

const (
	AttendanceStarted   AttendanceStatus = "STARTED"
	AttendanceCompleted AttendanceStatus = "COMPLETED"
)

// JoinedFrom records where an organization signed up.
type JoinedFrom string

const (
	JoinedFromSignupPage     JoinedFrom = "SIGNUP_PAGE"
	JoinedFromAdminDashboard JoinedFrom = "ADMIN_DASHBOARD"
)

func (j JoinedFrom) Valid() bool {
	switch j {
	case JoinedFromSignupPage, JoinedFromAdminDashboard:
		return true
	}
	return false
}
