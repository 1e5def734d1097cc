package store

import (
	"strings"

	"gorm.io/gorm"
)

// ForConcern keeps products linked to the concern with exactly this name.
func ForConcern(name string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if name == "" {
			return db
		}
		return db.Where(`EXISTS (
			SELECT 1 FROM product_concerns pc
			JOIN concerns c ON c.id = pc.concern_id
			WHERE pc.product_id = products.id AND c.name = ?)`, name)
	}
}

// MatchingText keeps products whose name or brand contains q. Case sensitivity follows
// the database collation.
func MatchingText(q string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q == "" {
			return db
		}
		pattern := "%" + escapeLike(q) + "%"
		return db.Where(`(products.name LIKE ? ESCAPE '\' OR products.brand LIKE ? ESCAPE '\')`, pattern, pattern)
	}
}

// ByRating orders by rating average, then rating count, both descending. Unrated
// products come first on every database, matching DESC on Postgres.
func ByRating(db *gorm.DB) *gorm.DB {
	return db.
		Order("products.rating_average IS NOT NULL").
		Order("products.rating_average DESC").
		Order("products.rating_count DESC").
		Order("products.name ASC")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
