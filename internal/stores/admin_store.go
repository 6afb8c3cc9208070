package stores

import (
	"gorm.io/gorm"

	"idrive/internal/config"
	"idrive/internal/models"
)

// AdminFilter narrows admin queries. Zero-valued fields are not applied;
// Disabled is a pointer so filtering on false is possible.
type AdminFilter struct {
	ID          string
	PhoneNumber uint64
	Disabled    *bool
}

func (f AdminFilter) apply(db *gorm.DB) *gorm.DB {
	if f.ID != "" {
		db = db.Where("id = ?", f.ID)
	}
	if f.PhoneNumber != 0 {
		db = db.Where("phone_number = ?", f.PhoneNumber)
	}
	if f.Disabled != nil {
		db = db.Where("disabled = ?", *f.Disabled)
	}
	return db
}

func AdminsByFilter(f AdminFilter) ([]models.Admin, error) {
	var admins []models.Admin
	err := f.apply(config.GetDB().Model(&models.Admin{})).Find(&admins).Error
	return admins, err
}

func CreateAdmin(admin *models.Admin) error {
	return config.GetDB().Create(admin).Error
}

// DeleteAdminByFilter hard-deletes matching admins and reports how many rows
// went away, so callers can distinguish a no-op from a real delete.
func DeleteAdminByFilter(f AdminFilter) (int64, error) {
	res := f.apply(config.GetDB()).Delete(&models.Admin{})
	return res.RowsAffected, res.Error
}
