package stores

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"idrive/internal/config"
	"idrive/internal/models"
)

type StudentFilter struct {
	ID             string
	PhoneNumber    uint64
	OrganizationID string
	Status         models.StudentStatus
}

func (f StudentFilter) apply(db *gorm.DB) *gorm.DB {
	if f.ID != "" {
		db = db.Where("id = ?", f.ID)
	}
	if f.PhoneNumber != 0 {
		db = db.Where("phone_number = ?", f.PhoneNumber)
	}
	if f.OrganizationID != "" {
		db = db.Where("organization_id = ?", f.OrganizationID)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	return db
}

func StudentsByFilter(f StudentFilter) ([]models.Student, error) {
	var students []models.Student
	err := f.apply(config.GetDB().Model(&models.Student{})).Find(&students).Error
	return students, err
}

// StudentDetailsByFilter also loads the owning organization.
func StudentDetailsByFilter(f StudentFilter) ([]models.Student, error) {
	var students []models.Student
	err := f.apply(config.GetDB().Model(&models.Student{}).Preload("Organization")).Find(&students).Error
	return students, err
}

func CreateStudent(student *models.Student) error {
	return config.GetDB().Create(student).Error
}

// UpdateStudentByFilter applies the change map to the single matching record.
// Ownership predicates belong in the filter: a caller scoping by organization
// gets a conditional write, so a concurrent reassignment cannot slip a
// cross-tenant update through.
func UpdateStudentByFilter(f StudentFilter, changes map[string]interface{}) (*models.Student, error) {
	if len(changes) == 0 {
		students, err := StudentsByFilter(f)
		if err != nil || len(students) == 0 {
			return nil, err
		}
		return &students[0], nil
	}
	var student models.Student
	res := f.apply(config.GetDB().Model(&student)).Clauses(clause.Returning{}).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &student, nil
}

func DeleteStudentByFilter(f StudentFilter) (int64, error) {
	res := f.apply(config.GetDB()).Delete(&models.Student{})
	return res.RowsAffected, res.Error
}
