package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SkinType string

const (
	SkinTypeDry         SkinType = "DRY"
	SkinTypeOily        SkinType = "OILY"
	SkinTypeCombination SkinType = "COMBINATION"
	SkinTypeSensitive   SkinType = "SENSITIVE"
	SkinTypeNormal      SkinType = "NORMAL"
)

// Valid reports whether t is one of the known skin types.
func (t SkinType) Valid() bool {
	switch t {
	case SkinTypeDry, SkinTypeOily, SkinTypeCombination, SkinTypeSensitive, SkinTypeNormal:
		return true
	}
	return false
}

// DemoUserAlias is the sentinel id the front end sends in place of a real user id.
const DemoUserAlias = "demo-user-id"

// DemoUserEmail identifies the seeded user the demo alias resolves to.
const DemoUserEmail = "demo@skincare.plus"

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Name      *string   `gorm:"size:255" json:"name"`
	SkinType  *SkinType `gorm:"size:20" json:"skinType"`
	Concerns  []Concern `gorm:"many2many:user_concerns;" json:"concerns,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (User) TableName() string {
	return "users"
}
