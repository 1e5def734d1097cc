package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/models"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/store"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultData []byte

type Concern struct {
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
}

type Product struct {
	Name          string   `yaml:"name"`
	Brand         string   `yaml:"brand"`
	PriceCents    int      `yaml:"priceCents"`
	Currency      string   `yaml:"currency"`
	ProductURL    string   `yaml:"productUrl"`
	ImageURL      *string  `yaml:"imageUrl"`
	Retailer      string   `yaml:"retailer"`
	Ingredients   *string  `yaml:"ingredients"`
	RatingAverage *float64 `yaml:"ratingAverage"`
	RatingCount   int      `yaml:"ratingCount"`
	SuitableFor   []string `yaml:"suitableFor"`
}

type User struct {
	Email    string   `yaml:"email"`
	Name     *string  `yaml:"name"`
	SkinType string   `yaml:"skinType"`
	Concerns []string `yaml:"concerns"`
}

// Data is the reference catalog and the demo account.
type Data struct {
	Concerns []Concern `yaml:"concerns"`
	Products []Product `yaml:"products"`
	Users    []User    `yaml:"users"`
}

// Result counts the rows a run created. Rows that already existed are not counted.
type Result struct {
	Concerns int
	Products int
	Users    int
}

// Default returns the embedded seed data.
func Default() (*Data, error) {
	return parse(defaultData)
}

func LoadFromFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return parse(raw)
}

// Load reads path, or the embedded data when path is empty.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}
	return LoadFromFile(path)
}

func parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	for _, u := range data.Users {
		if u.Email == "" {
			return nil, fmt.Errorf("seed user without email")
		}
		if u.SkinType != "" && !models.SkinType(u.SkinType).Valid() {
			return nil, fmt.Errorf("seed user %s: unknown skin type %q", u.Email, u.SkinType)
		}
	}
	return &data, nil
}

// Run creates whatever part of data is missing. Existing rows are left as they are, so
// repeated runs are no-ops. Concern names that do not resolve are skipped.
func Run(ctx context.Context, st *store.Store, data *Data) (Result, error) {
	var res Result

	for _, c := range data.Concerns {
		created, err := st.UpsertConcern(ctx, &models.Concern{Name: c.Name, Description: c.Description}, false)
		if err != nil {
			return res, err
		}
		if created {
			res.Concerns++
		}
	}

	for _, p := range data.Products {
		concerns, err := st.FindConcernsByName(ctx, p.SuitableFor)
		if err != nil {
			return res, err
		}
		product := &models.Product{
			Name:          p.Name,
			Brand:         p.Brand,
			PriceCents:    p.PriceCents,
			Currency:      p.Currency,
			ProductURL:    p.ProductURL,
			ImageURL:      p.ImageURL,
			Retailer:      p.Retailer,
			Ingredients:   p.Ingredients,
			RatingAverage: p.RatingAverage,
			RatingCount:   p.RatingCount,
			SuitableFor:   concerns,
		}
		created, err := st.UpsertProduct(ctx, product, false)
		if err != nil {
			return res, err
		}
		if created {
			res.Products++
		}
	}

	for _, u := range data.Users {
		concerns, err := st.FindConcernsByName(ctx, u.Concerns)
		if err != nil {
			return res, err
		}
		user := &models.User{Email: u.Email, Name: u.Name, Concerns: concerns}
		if u.SkinType != "" {
			skinType := models.SkinType(u.SkinType)
			user.SkinType = &skinType
		}
		created, err := st.UpsertUser(ctx, user)
		if err != nil {
			return res, err
		}
		if created {
			res.Users++
		}
	}

	slog.Info("seed completed", "concerns", res.Concerns, "products", res.Products, "users", res.Users)
	return res, nil
}
