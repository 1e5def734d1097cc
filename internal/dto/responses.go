package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// NotFoundResponse matches the shape the front end expects for a missing user.
type NotFoundResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

type TipsResponse struct {
	Tips []string `json:"tips"`
}

type Provider struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distanceKm"`
	Rating     float64 `json:"rating"`
}

type ProvidersResponse struct {
	Location  string     `json:"location"`
	Providers []Provider `json:"providers"`
}

type DemoProduct struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Store string  `json:"store"`
}

type DemoProductsResponse struct {
	Query    string        `json:"query"`
	Concerns []string      `json:"concerns"`
	Products []DemoProduct `json:"products"`
}

type SeedResponse struct {
	Error    bool   `json:"error"`
	Message  string `json:"message"`
	Concerns int    `json:"concerns"`
	Products int    `json:"products"`
	Users    int    `json:"users"`
}
