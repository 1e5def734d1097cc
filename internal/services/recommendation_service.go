package services

// GenericTips are returned when no concerns are selected.
var GenericTips = []string{"Hydrate well", "Use sunscreen (SPF 30+)", "Get enough sleep"}

// RecommendationService produces templated advice. It is independent of the catalog;
// concern-filtered product lists come from CatalogService.
type RecommendationService struct{}

func NewRecommendationService() *RecommendationService {
	return &RecommendationService{}
}

func (s *RecommendationService) Tips(concerns []string) []string {
	if len(concerns) == 0 {
		tips := make([]string, len(GenericTips))
		copy(tips, GenericTips)
		return tips
	}
	tips := make([]string, 0, len(concerns))
	for _, c := range concerns {
		tips = append(tips, "General advice for "+c)
	}
	return tips
}
