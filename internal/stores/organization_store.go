package stores

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"idrive/internal/config"
	"idrive/internal/models"
)

type OrganizationFilter struct {
	ID          string
	PhoneNumber uint64
	Active      *bool
	Approved    *bool
	JoinedFrom  models.JoinedFrom
}

func (f OrganizationFilter) apply(db *gorm.DB) *gorm.DB {
	if f.ID != "" {
		db = db.Where("id = ?", f.ID)
	}
	if f.PhoneNumber != 0 {
		db = db.Where("phone_number = ?", f.PhoneNumber)
	}
	if f.Active != nil {
		db = db.Where("active = ?", *f.Active)
	}
	if f.Approved != nil {
		db = db.Where("approved = ?", *f.Approved)
	}
	if f.JoinedFrom != "" {
		db = db.Where("joined_from = ?", f.JoinedFrom)
	}
	return db
}

func OrganizationsByFilter(f OrganizationFilter) ([]models.Organization, error) {
	var orgs []models.Organization
	err := f.apply(config.GetDB().Model(&models.Organization{})).Find(&orgs).Error
	return orgs, err
}

func CreateOrganization(org *models.Organization) error {
	return config.GetDB().Create(org).Error
}

// UpdateOrganizationByFilter applies the change map to the single matching
// record and returns the updated row, or nil when nothing matched.
func UpdateOrganizationByFilter(f OrganizationFilter, changes map[string]interface{}) (*models.Organization, error) {
	if len(changes) == 0 {
		orgs, err := OrganizationsByFilter(f)
		if err != nil || len(orgs) == 0 {
			return nil, err
		}
		return &orgs[0], nil
	}
	var org models.Organization
	res := f.apply(config.GetDB().Model(&org)).Clauses(clause.Returning{}).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &org, nil
}
