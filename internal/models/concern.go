package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Concern is a named skin issue category used to tag products and users.
type Concern struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
}

func (c *Concern) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (Concern) TableName() string {
	return "concerns"
}
