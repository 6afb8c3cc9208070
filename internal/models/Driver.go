package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Driver struct {
	ID             string        `json:"id" gorm:"primaryKey;size:36"`
	OrganizationID *string       `json:"organizationId" gorm:"index;size:36"`
	Organization   *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	PhoneNumber    uint64        `json:"phoneNumber" gorm:"uniqueIndex"`
	Name           string        `json:"name"`
	Profile        Profile       `json:"profile" gorm:"size:16"`
	Disabled       bool          `json:"disabled"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	DeleteAt       *time.Time    `json:"deleteAt"`
}

func (d *Driver) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Profile == "" {
		d.Profile = ProfileDriver
	}
	return nil
}
