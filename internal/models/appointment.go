package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment is a dermatologist booking. EndTime is not checked against StartTime.
type Appointment struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	User          *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Dermatologist string    `gorm:"size:255;not null" json:"dermatologist"`
	Location      string    `gorm:"size:255;not null" json:"location"`
	StartTime     time.Time `gorm:"not null;index" json:"startTime"`
	EndTime       time.Time `gorm:"not null" json:"endTime"`
	Notes         *string   `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (Appointment) TableName() string {
	return "appointments"
}

// MarshalJSON writes the timestamps with millisecond precision in UTC.
func (a Appointment) MarshalJSON() ([]byte, error) {
	type plain Appointment
	return json.Marshal(struct {
		plain
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
		CreatedAt string `json:"createdAt"`
	}{
		plain:     plain(a),
		StartTime: FormatISO(a.StartTime),
		EndTime:   FormatISO(a.EndTime),
		CreatedAt: FormatISO(a.CreatedAt),
	})
}
