package stores

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"idrive/internal/config"
	"idrive/internal/models"
)

type AttendanceFilter struct {
	ID          string
	StudentID   string
	StudentIDs  []string
	DriverID    string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

func (f AttendanceFilter) apply(db *gorm.DB) *gorm.DB {
	if f.ID != "" {
		db = db.Where("id = ?", f.ID)
	}
	if f.StudentID != "" {
		db = db.Where("student_id = ?", f.StudentID)
	}
	if len(f.StudentIDs) > 0 {
		db = db.Where("student_id IN ?", f.StudentIDs)
	}
	if f.DriverID != "" {
		db = db.Where("driver_id = ?", f.DriverID)
	}
	if f.CreatedFrom != nil {
		db = db.Where("created_at >= ?", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		db = db.Where("created_at <= ?", *f.CreatedTo)
	}
	return db
}

func AttendancesByFilter(f AttendanceFilter) ([]models.Attendance, error) {
	var records []models.Attendance
	err := f.apply(config.GetDB().Model(&models.Attendance{})).Find(&records).Error
	return records, err
}

// AttendanceDetailsByFilter also loads the driver who recorded each trip.
func AttendanceDetailsByFilter(f AttendanceFilter) ([]models.Attendance, error) {
	var records []models.Attendance
	err := f.apply(config.GetDB().Model(&models.Attendance{}).Preload("Driver")).Find(&records).Error
	return records, err
}

func CreateAttendance(attendance *models.Attendance) error {
	return config.GetDB().Create(attendance).Error
}

func UpdateAttendanceByFilter(f AttendanceFilter, changes map[string]interface{}) (*models.Attendance, error) {
	if len(changes) == 0 {
		records, err := AttendancesByFilter(f)
		if err != nil || len(records) == 0 {
			return nil, err
		}
		return &records[0], nil
	}
	var attendance models.Attendance
	res := f.apply(config.GetDB().Model(&attendance)).Clauses(clause.Returning{}).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &attendance, nil
}

func DeleteAttendanceByFilter(f AttendanceFilter) (int64, error) {
	res := f.apply(config.GetDB()).Delete(&models.Attendance{})
	return res.RowsAffected, res.Error
}

// ownedStudents restricts attendance mutations to students of one
// organization. Embedding it in the mutation filter makes the ownership
// check and the write a single statement, so a record reassigned between a
// handler's pre-read and its write still cannot be touched across tenants.
func ownedStudents(orgID string) *gorm.DB {
	return config.GetDB().Model(&models.Student{}).Select("id").Where("organization_id = ?", orgID)
}

func UpdateAttendanceOwnedBy(orgID, attendanceID string, changes map[string]interface{}) (*models.Attendance, error) {
	if len(changes) == 0 {
		var records []models.Attendance
		err := config.GetDB().
			Where("id = ? AND student_id IN (?)", attendanceID, ownedStudents(orgID)).
			Find(&records).Error
		if err != nil || len(records) == 0 {
			return nil, err
		}
		return &records[0], nil
	}
	var attendance models.Attendance
	res := config.GetDB().Model(&attendance).
		Clauses(clause.Returning{}).
		Where("id = ? AND student_id IN (?)", attendanceID, ownedStudents(orgID)).
		Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &attendance, nil
}

func DeleteAttendanceOwnedBy(orgID, attendanceID string) (int64, error) {
	res := config.GetDB().
		Where("id = ? AND student_id IN (?)", attendanceID, ownedStudents(orgID)).
		Delete(&models.Attendance{})
	return res.RowsAffected, res.Error
}
