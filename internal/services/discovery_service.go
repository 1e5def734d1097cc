package services

import "github.com/ahmetcoskunkizilkaya/skincare-plus/internal/dto"

const (
	defaultProviderLocation = "your area"
	defaultProductQuery     = "skin care"
)

// DiscoveryService backs the placeholder provider and product searches. The lists are
// static; only the echoed input varies.
type DiscoveryService struct{}

func NewDiscoveryService() *DiscoveryService {
	return &DiscoveryService{}
}

func (s *DiscoveryService) Providers(req dto.ProvidersRequest) dto.ProvidersResponse {
	location := defaultProviderLocation
	if req.Location != nil {
		location = *req.Location
	}
	return dto.ProvidersResponse{
		Location: location,
		Providers: []dto.Provider{
			{ID: "demo-1", Name: "Derm Clinic One", DistanceKm: 2.1, Rating: 4.6},
			{ID: "demo-2", Name: "ClearSkin Center", DistanceKm: 4.3, Rating: 4.3},
		},
	}
}

func (s *DiscoveryService) Products(req dto.DemoProductsRequest) dto.DemoProductsResponse {
	query := defaultProductQuery
	if req.Query != nil {
		query = *req.Query
	}
	concerns := req.Concerns
	if concerns == nil {
		concerns = []string{}
	}
	return dto.DemoProductsResponse{
		Query:    query,
		Concerns: concerns,
		Products: []dto.DemoProduct{
			{ID: "prod-1", Name: "Gentle Cleanser", Price: 12.99, Store: "DemoMart"},
			{ID: "prod-2", Name: "Hydrating Serum", Price: 24.5, Store: "ShopNow"},
		},
	}
}
