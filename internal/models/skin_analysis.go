package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkinAnalysis is one heuristic analysis submission. Rows are append-only.
type SkinAnalysis struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	User           *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Notes          *string   `gorm:"type:text" json:"notes"`
	ScoreHydration int       `gorm:"not null" json:"scoreHydration"`
	ScoreAcne      int       `gorm:"not null" json:"scoreAcne"`
	ScoreTexture   int       `gorm:"not null" json:"scoreTexture"`
	ImageKey       *string   `gorm:"type:text" json:"imageKey,omitempty"`
	CreatedAt      time.Time `gorm:"index" json:"createdAt"`
}

func (s *SkinAnalysis) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (SkinAnalysis) TableName() string {
	return "skin_analyses"
}

func (s SkinAnalysis) MarshalJSON() ([]byte, error) {
	type plain SkinAnalysis
	return json.Marshal(struct {
		plain
		CreatedAt string `json:"createdAt"`
	}{
		plain:     plain(s),
		CreatedAt: FormatISO(s.CreatedAt),
	})
}
