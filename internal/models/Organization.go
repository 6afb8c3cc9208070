package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Organization represents a transport operator. New signups start inactive
// and unapproved; an admin flips approved and eventually active.
type Organization struct {
	ID           string         `json:"id" gorm:"primaryKey;size:36"`
	Name         string         `json:"name"`
	PhoneNumber  uint64         `json:"phoneNumber" gorm:"uniqueIndex"`
	Email        *string        `json:"email"`
	Active       bool           `json:"active"`
	Approved     bool           `json:"approved"`
	OtpVerified  bool           `json:"otpVerified"`
	Address      string         `json:"address"`
	Pincode      int            `json:"pincode"`
	City         string         `json:"city"`
	State        string         `json:"state"`
	Details      *string        `json:"details"`
	License      *string        `json:"license"`
	Photos       pq.StringArray `json:"photos" gorm:"type:text[]"`
	JoinedFrom   *JoinedFrom    `json:"joinedFrom" gorm:"size:32"`
	Profile      Profile        `json:"profile" gorm:"size:16"`
	ApprovedByID *string        `json:"approvedById" gorm:"size:36"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeleteAt     *time.Time     `json:"deleteAt"`
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Profile == "" {
		o.Profile = ProfileOrganization
	}
	return nil
}
