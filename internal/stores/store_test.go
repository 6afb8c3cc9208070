package stores

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"idrive/internal/config"
	"idrive/internal/models"
)

func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	config.DB = gdb
	return mock
}

func TestAdminsByFilterAppliesOnlySetFields(t *testing.T) {
	mock := newMockDB(t)

	disabled := false
	mock.ExpectQuery(`SELECT \* FROM "admins" WHERE phone_number = \$1 AND disabled = \$2`).
		WithArgs(int64(9876543210), false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone_number", "profile", "disabled"}).
			AddRow("adm-1", "Root", 9876543210, "ADMIN", false))

	admins, err := AdminsByFilter(AdminFilter{PhoneNumber: 9876543210, Disabled: &disabled})
	if err != nil {
		t.Fatalf("query error: %v", err)
	}
	if len(admins) != 1 || admins[0].ID != "adm-1" {
		t.Fatalf("unexpected result: %+v", admins)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAdminsByFilterZeroFilterHasNoWhere(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "admins"$`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := AdminsByFilter(AdminFilter{}); err != nil {
		t.Fatalf("query error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateStudentByFilterReturnsUpdatedRow(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`UPDATE "students" SET "name"=\$1,"updated_at"=\$2 WHERE id = \$3 AND organization_id = \$4 RETURNING \*`).
		WithArgs("Renamed", sqlmock.AnyArg(), "stu-1", "org-a").
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "name", "status"}).
			AddRow("stu-1", "org-a", "Renamed", "ONBOARDED"))

	student, err := UpdateStudentByFilter(
		StudentFilter{ID: "stu-1", OrganizationID: "org-a"},
		map[string]interface{}{"name": "Renamed"},
	)
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if student == nil || student.Name != "Renamed" {
		t.Fatalf("unexpected student: %+v", student)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateStudentByFilterNoMatchReturnsNil(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`UPDATE "students" SET "name"=\$1,"updated_at"=\$2 WHERE id = \$3 AND organization_id = \$4 RETURNING \*`).
		WithArgs("Renamed", sqlmock.AnyArg(), "stu-1", "org-b").
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "name", "status"}))

	student, err := UpdateStudentByFilter(
		StudentFilter{ID: "stu-1", OrganizationID: "org-b"},
		map[string]interface{}{"name": "Renamed"},
	)
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if student != nil {
		t.Fatalf("expected nil on zero affected rows, got %+v", student)
	}
}

func TestUpdateStudentByFilterEmptyChangesFallsBackToFetch(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "students" WHERE id = \$1`).
		WithArgs("stu-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("stu-1", "Unchanged"))

	student, err := UpdateStudentByFilter(StudentFilter{ID: "stu-1"}, map[string]interface{}{})
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if student == nil || student.Name != "Unchanged" {
		t.Fatalf("unexpected student: %+v", student)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateAttendanceOwnedByScopesToOrganization(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`UPDATE "attendances" SET "km_driven"=\$1,"updated_at"=\$2 WHERE id = \$3 AND student_id IN \(SELECT .* FROM "students" WHERE organization_id = \$4\) RETURNING \*`).
		WithArgs(12, sqlmock.AnyArg(), "att-1", "org-a").
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "km_driven", "status"}).
			AddRow("att-1", "stu-1", 12, "STARTED"))

	attendance, err := UpdateAttendanceOwnedBy("org-a", "att-1", map[string]interface{}{"km_driven": 12})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if attendance == nil || attendance.KmDriven != 12 {
		t.Fatalf("unexpected attendance: %+v", attendance)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateAttendanceOwnedByForeignStudentNoMatch(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`UPDATE "attendances" SET "km_driven"=\$1,"updated_at"=\$2 WHERE id = \$3 AND student_id IN \(SELECT .* FROM "students" WHERE organization_id = \$4\) RETURNING \*`).
		WithArgs(12, sqlmock.AnyArg(), "att-1", "org-b").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	attendance, err := UpdateAttendanceOwnedBy("org-b", "att-1", map[string]interface{}{"km_driven": 12})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if attendance != nil {
		t.Fatalf("cross-tenant update must not match, got %+v", attendance)
	}
}

func TestDeleteAttendanceOwnedBy(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectExec(`DELETE FROM "attendances" WHERE id = \$1 AND student_id IN \(SELECT .* FROM "students" WHERE organization_id = \$2\)`).
		WithArgs("att-1", "org-a").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := DeleteAttendanceOwnedBy("org-a", "att-1")
	if err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row deleted, got %d", rows)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteAdminByFilterReportsNoOp(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectExec(`DELETE FROM "admins" WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := DeleteAdminByFilter(AdminFilter{ID: "missing"})
	if err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if rows != 0 {
		t.Fatalf("expected 0 rows, got %d", rows)
	}
}

func TestAttendancesByFilterStudentIDsAndWindow(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "attendances" WHERE student_id IN \(\$1,\$2\)`).
		WithArgs("stu-1", "stu-2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "status"}).
			AddRow("att-1", "stu-1", "STARTED"))

	records, err := AttendancesByFilter(AttendanceFilter{StudentIDs: []string{"stu-1", "stu-2"}})
	if err != nil {
		t.Fatalf("query error: %v", err)
	}
	if len(records) != 1 || records[0].ID != "att-1" {
		t.Fatalf("unexpected records: %+v", records)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateStudentDefaultsFromHook(t *testing.T) {
	mock := newMockDB(t)

	mock.ExpectExec(`INSERT INTO "students"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	orgID := "org-a"
	student := &models.Student{Name: "New Kid", PhoneNumber: 7777777777, OrganizationID: &orgID}
	if err := CreateStudent(student); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if student.ID == "" {
		t.Fatalf("expected generated id")
	}
	if student.Profile != models.ProfileStudent {
		t.Fatalf("expected STUDENT profile, got %q", student.Profile)
	}
	if student.Status != models.StudentOnboarded {
		t.Fatalf("expected ONBOARDED status, got %q", student.Status)
	}
}
