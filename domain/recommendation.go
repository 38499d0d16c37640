package domain

type MatchType string

const (
	MatchSimilar       MatchType = "SIMILAR"
	MatchPriceRange    MatchType = "PRICE_RANGE"
	MatchComplementary MatchType = "COMPLEMENTARY"
)

// Recommendation is built fresh per request and never persisted.
type Recommendation struct {
	BottleID     string     `json:"bottle_id"`
	Name         string     `json:"name"`
	SpiritType   SpiritType `json:"spirit_type"`
	Region       Region     `json:"region,omitempty"`
	Price        float64    `json:"price"`
	Score        float64    `json:"score"`
	MatchType    MatchType  `json:"match_type"`
	MatchDetails []string   `json:"match_details"`
}

func NewRecommendation(b Bottle, score float64, matchType MatchType, details ...string) Recommendation {
	return Recommendation{
		BottleID:     b.ID,
		Name:         b.Name,
		SpiritType:   b.SpiritType,
		Region:       b.Region,
		Price:        b.Price,
		Score:        score,
		MatchType:    matchType,
		MatchDetails: details,
	}
}
