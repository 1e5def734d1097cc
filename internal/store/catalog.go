package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/models"
	"gorm.io/gorm"
)

// ProductFilter narrows a catalog search. Empty fields do not filter.
type ProductFilter struct {
	Concern string
	Query   string
}

// SearchProducts returns matching products, best rated first, with SuitableFor loaded.
func (s *Store) SearchProducts(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	products := make([]models.Product, 0)
	err := s.db.WithContext(ctx).
		Scopes(ForConcern(f.Concern), MatchingText(f.Query), ByRating).
		Preload("SuitableFor", func(db *gorm.DB) *gorm.DB {
			return db.Order("concerns.name ASC")
		}).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

func (s *Store) ListConcerns(ctx context.Context) ([]models.Concern, error) {
	concerns := make([]models.Concern, 0)
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&concerns).Error; err != nil {
		return nil, fmt.Errorf("list concerns: %w", err)
	}
	return concerns, nil
}

// FindConcernsByName returns the concerns whose names are listed. Unknown names are skipped.
func (s *Store) FindConcernsByName(ctx context.Context, names []string) ([]models.Concern, error) {
	concerns := make([]models.Concern, 0, len(names))
	if len(names) == 0 {
		return concerns, nil
	}
	if err := s.db.WithContext(ctx).Where("name IN ?", names).Order("name ASC").Find(&concerns).Error; err != nil {
		return nil, fmt.Errorf("find concerns: %w", err)
	}
	return concerns, nil
}

// UpsertConcern creates the concern if its name is new. With overwrite set, an existing
// row's description is replaced; otherwise it is left untouched. c is filled with the stored row.
func (s *Store) UpsertConcern(ctx context.Context, c *models.Concern, overwrite bool) (created bool, err error) {
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Concern
		err := tx.Where("name = ?", c.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return tx.Create(c).Error
		}
		if err != nil {
			return err
		}
		if overwrite {
			if err := tx.Model(&existing).Select("description").Updates(models.Concern{Description: c.Description}).Error; err != nil {
				return err
			}
			existing.Description = c.Description
		}
		*c = existing
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("upsert concern %q: %w", c.Name, err)
	}
	return created, nil
}

// UpsertProduct creates or (with overwrite) updates the product keyed by (name, brand).
// p.SuitableFor must hold stored concerns; on overwrite the links are replaced.
func (s *Store) UpsertProduct(ctx context.Context, p *models.Product, overwrite bool) (created bool, err error) {
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		err := tx.Where("name = ? AND brand = ?", p.Name, p.Brand).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return tx.Omit("SuitableFor.*").Create(p).Error
		}
		if err != nil {
			return err
		}
		if overwrite {
			p.ID = existing.ID
			if err := tx.Model(&existing).
				Select("price_cents", "currency", "product_url", "image_url", "retailer",
					"ingredients", "rating_average", "rating_count").
				Updates(p).Error; err != nil {
				return err
			}
			if err := tx.Model(&existing).Association("SuitableFor").Replace(p.SuitableFor); err != nil {
				return err
			}
		}
		var stored models.Product
		if err := tx.Preload("SuitableFor").First(&stored, "id = ?", existing.ID).Error; err != nil {
			return err
		}
		*p = stored
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("upsert product %q/%q: %w", p.Name, p.Brand, err)
	}
	return created, nil
}

// UpsertUser creates the user keyed by email when missing. Existing users are never modified.
func (s *Store) UpsertUser(ctx context.Context, u *models.User) (created bool, err error) {
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("email = ?", u.Email).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return tx.Omit("Concerns.*").Create(u).Error
		}
		if err != nil {
			return err
		}
		*u = existing
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("upsert user %q: %w", u.Email, err)
	}
	return created, nil
}
