package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is a catalog entry, unique by (name, brand).
type Product struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null;uniqueIndex:idx_products_name_brand,priority:1" json:"name"`
	Brand         string    `gorm:"size:255;not null;uniqueIndex:idx_products_name_brand,priority:2" json:"brand"`
	PriceCents    int       `gorm:"not null" json:"priceCents"`
	Currency      string    `gorm:"size:3;not null;default:'USD'" json:"currency"`
	ProductURL    string    `gorm:"type:text;not null" json:"productUrl"`
	ImageURL      *string   `gorm:"type:text" json:"imageUrl"`
	Retailer      string    `gorm:"size:255;not null" json:"retailer"`
	Ingredients   *string   `gorm:"type:text" json:"ingredients"`
	RatingAverage *float64  `gorm:"index" json:"ratingAverage"`
	RatingCount   int       `gorm:"not null;default:0" json:"ratingCount"`
	SuitableFor   []Concern `gorm:"many2many:product_concerns;" json:"suitableFor"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}
