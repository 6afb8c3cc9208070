package stores

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"idrive/internal/config"
	"idrive/internal/models"
)

type DriverFilter struct {
	ID             string
	PhoneNumber    uint64
	OrganizationID string
}

func (f DriverFilter) apply(db *gorm.DB) *gorm.DB {
	if f.ID != "" {
		db = db.Where("id = ?", f.ID)
	}
	if f.PhoneNumber != 0 {
		db = db.Where("phone_number = ?", f.PhoneNumber)
	}
	if f.OrganizationID != "" {
		db = db.Where("organization_id = ?", f.OrganizationID)
	}
	return db
}

func DriversByFilter(f DriverFilter) ([]models.Driver, error) {
	var drivers []models.Driver
	err := f.apply(config.GetDB().Model(&models.Driver{})).Find(&drivers).Error
	return drivers, err
}

// DriverDetailsByFilter also loads the owning organization.
func DriverDetailsByFilter(f DriverFilter) ([]models.Driver, error) {
	var drivers []models.Driver
	err := f.apply(config.GetDB().Model(&models.Driver{}).Preload("Organization")).Find(&drivers).Error
	return drivers, err
}

func CreateDriver(driver *models.Driver) error {
	return config.GetDB().Create(driver).Error
}

func UpdateDriverByFilter(f DriverFilter, changes map[string]interface{}) (*models.Driver, error) {
	if len(changes) == 0 {
		drivers, err := DriversByFilter(f)
		if err != nil || len(drivers) == 0 {
			return nil, err
		}
		return &drivers[0], nil
	}
	var driver models.Driver
	res := f.apply(config.GetDB().Model(&driver)).Clauses(clause.Returning{}).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &driver, nil
}

func DeleteDriverByFilter(f DriverFilter) (int64, error) {
	res := f.apply(config.GetDB()).Delete(&models.Driver{})
	return res.RowsAffected, res.Error
}
