package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Expense struct {
	ID             string        `json:"id" gorm:"primaryKey;size:36"`
	OrganizationID string        `json:"organizationId" gorm:"index;size:36;not null"`
	Organization   *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	DriverID       *string       `json:"driverId" gorm:"index;size:36"`
	Driver         *Driver       `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	Amount         int           `json:"amount"`
	Type           string        `json:"type"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	DeleteAt       *time.Time    `json:"deleteAt"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
