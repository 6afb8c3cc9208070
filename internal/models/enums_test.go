package models

import "testing"

func TestStudentStatusValid(t *testing.T) {
	for _, s := range []StudentStatus{StudentOnboarded, StudentInProgress, StudentCompleted} {
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if StudentStatus("DONE").Valid() {
		t.Fatalf("unknown student status should not be valid")
	}
	if StudentStatus("onboarded").Valid() {
		t.Fatalf("status tags are case sensitive")
	}
}

func TestJoinedFromValid(t *testing.T) {
	if !JoinedFromSignupPage.Valid() || !JoinedFromAdminDashboard.Valid() {
		t.Fatalf("expected signup sources to be valid")
	}
	if JoinedFrom("REFERRAL").Valid() {
		t.Fatalf("unknown signup source should not be valid")
	}
}
