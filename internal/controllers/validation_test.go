package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"idrive/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func bindBody(t *testing.T, body string, obj interface{}) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, bindJSON(c, obj)
}

func bodyErrors(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var resp struct {
		Success bool     `json:"success"`
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Success || resp.Message != "validation failed" {
		t.Fatalf("unexpected envelope: %s", w.Body.String())
	}
	return resp.Errors
}

func TestBindJSONRequiredMessages(t *testing.T) {
	var in createAdminInput
	w, ok := bindBody(t, `{}`, &in)
	if ok {
		t.Fatalf("expected bind to fail")
	}
	if w.Code != 400 {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	errs := bodyErrors(t, w)
	want := []string{"Name field is required", "Phone Number field is required"}
	if !reflect.DeepEqual(errs, want) {
		t.Fatalf("errors = %v, want %v", errs, want)
	}
}

func TestBindJSONTypeMessage(t *testing.T) {
	var in createAdminInput
	w, ok := bindBody(t, `{"name":"A","phoneNumber":"abc"}`, &in)
	if ok {
		t.Fatalf("expected bind to fail")
	}

	errs := bodyErrors(t, w)
	want := []string{"Phone Number must be a Integer."}
	if !reflect.DeepEqual(errs, want) {
		t.Fatalf("errors = %v, want %v", errs, want)
	}
}

func TestBindJSONOneofMessage(t *testing.T) {
	var in updateStudentInput
	w, ok := bindBody(t, `{"status":"GRADUATED"}`, &in)
	if ok {
		t.Fatalf("expected bind to fail")
	}

	errs := bodyErrors(t, w)
	want := []string{"Status must be one of ONBOARDED INPROGRESS COMPLETED."}
	if !reflect.DeepEqual(errs, want) {
		t.Fatalf("errors = %v, want %v", errs, want)
	}
}

func TestBindJSONEmailMessage(t *testing.T) {
	var in updateOrganizationInput
	w, ok := bindBody(t, `{"email":"not-an-email"}`, &in)
	if ok {
		t.Fatalf("expected bind to fail")
	}

	errs := bodyErrors(t, w)
	want := []string{"Email must be a email in format."}
	if !reflect.DeepEqual(errs, want) {
		t.Fatalf("errors = %v, want %v", errs, want)
	}
}

func TestFieldLabel(t *testing.T) {
	cases := map[string]string{
		"phoneNumber":       "Phone Number",
		"PhoneNumber":       "Phone Number",
		"name":              "Name",
		"organizationId":    "Organization Id",
		"input.defaultTime": "Default Time",
		"kmDriven":          "Km Driven",
	}
	for in, want := range cases {
		if got := fieldLabel(in); got != want {
			t.Fatalf("fieldLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestKindLabel(t *testing.T) {
	if got := kindLabel(reflect.Uint64); got != "Integer" {
		t.Fatalf("kindLabel(uint64) = %q", got)
	}
	if got := kindLabel(reflect.Bool); got != "Boolean" {
		t.Fatalf("kindLabel(bool) = %q", got)
	}
	if got := kindLabel(reflect.String); got != "String" {
		t.Fatalf("kindLabel(string) = %q", got)
	}
}

func TestBelongsTo(t *testing.T) {
	orgA := "org-a"
	if !belongsTo(models.Student{OrganizationID: &orgA}, "org-a") {
		t.Fatalf("expected match")
	}
	if belongsTo(models.Student{OrganizationID: &orgA}, "org-b") {
		t.Fatalf("expected mismatch")
	}
	if belongsTo(models.Student{}, "org-a") {
		t.Fatalf("orphan student must not match any organization")
	}
}

func TestNewDriverStudent(t *testing.T) {
	orgA := "org-a"
	actor := models.Driver{ID: "drv-1", OrganizationID: &orgA}
	slot := "07:30"
	input := orgCreateStudentInput{Name: "New Kid", PhoneNumber: 7777777777, DefaultTime: &slot}

	student := newDriverStudent(actor, input)
	if student.OrganizationID == nil || *student.OrganizationID != "org-a" {
		t.Fatalf("expected driver's organization, got %+v", student.OrganizationID)
	}
	if student.Status != models.StudentInProgress {
		t.Fatalf("expected INPROGRESS status, got %q", student.Status)
	}
	if student.Name != "New Kid" || student.PhoneNumber != 7777777777 {
		t.Fatalf("unexpected student: %+v", student)
	}
	if student.DefaultTime == nil || *student.DefaultTime != "07:30" {
		t.Fatalf("expected default time to carry over")
	}
}

func TestDayWindow(t *testing.T) {
	now := time.Date(2026, time.March, 14, 15, 9, 26, 0, time.UTC)
	start, end := dayWindow(now)

	if !start.Equal(time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start: %v", start)
	}
	if end.Day() != 14 {
		t.Fatalf("end must stay within the same day, got %v", end)
	}
	if !end.Before(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("end must precede the next day, got %v", end)
	}
	if end.Sub(start) != 24*time.Hour-time.Nanosecond {
		t.Fatalf("unexpected window length: %v", end.Sub(start))
	}
}

func TestUpdateStudentInputChanges(t *testing.T) {
	name := "Renamed"
	status := models.StudentCompleted
	in := updateStudentInput{Name: &name, Status: &status}

	ch := in.changes()
	if len(ch) != 2 {
		t.Fatalf("expected 2 changes, got %v", ch)
	}
	if ch["name"] != "Renamed" || ch["status"] != models.StudentCompleted {
		t.Fatalf("unexpected changes: %v", ch)
	}
	if _, ok := ch["phone_number"]; ok {
		t.Fatalf("unset fields must not appear")
	}

	if got := (updateStudentInput{}).changes(); len(got) != 0 {
		t.Fatalf("empty input must produce no changes, got %v", got)
	}
}
