package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student is the transported customer. The organization reference is optional
// at creation but required for any organization-scoped access to succeed.
type Student struct {
	ID             string        `json:"id" gorm:"primaryKey;size:36"`
	OrganizationID *string       `json:"organizationId" gorm:"index;size:36"`
	Organization   *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	PhoneNumber    uint64        `json:"phoneNumber" gorm:"uniqueIndex"`
	Name           string        `json:"name"`
	DefaultTime    *string       `json:"defaultTime"`
	Profile        Profile       `json:"profile" gorm:"size:16"`
	Status         StudentStatus `json:"status" gorm:"size:16"`
	Disabled       bool          `json:"disabled"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	DeleteAt       *time.Time    `json:"deleteAt"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Profile == "" {
		s.Profile = ProfileStudent
	}
	if s.Status == "" {
		s.Status = StudentOnboarded
	}
	return nil
}
