package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Admin struct {
	ID          string     `json:"id" gorm:"primaryKey;size:36"`
	Name        string     `json:"name"`
	PhoneNumber uint64     `json:"phoneNumber" gorm:"uniqueIndex"`
	Profile     Profile    `json:"profile" gorm:"size:16"`
	Disabled    bool       `json:"disabled"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeleteAt    *time.Time `json:"deleteAt"`
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Profile == "" {
		a.Profile = ProfileAdmin
	}
	return nil
}
