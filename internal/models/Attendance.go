package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance is a single trip record for a student. It belongs to an
// organization only transitively, through its student.
type Attendance struct {
	ID            string           `json:"id" gorm:"primaryKey;size:36"`
	StudentID     *string          `json:"studentId" gorm:"index;size:36"`
	Student       *Student         `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	DriverID      *string          `json:"driverId" gorm:"index;size:36"`
	Driver        *Driver          `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	KmDriven      int              `json:"kmDriven"`
	Status        AttendanceStatus `json:"status" gorm:"size:16"`
	ClassType     *string          `json:"classType"`
	StartingMeter int              `json:"startingMeter"`
	EndingMeter   int              `json:"endingMeter"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
	DeleteAt      *time.Time       `json:"deleteAt"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = AttendanceStarted
	}
	return nil
}
