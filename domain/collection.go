package domain

// CollectionItem describes a bottle the user already owns. It is request
// input only and never persisted.
type CollectionItem struct {
	SpiritType   SpiritType `json:"spirit_type"`
	Region       Region     `json:"region,omitempty"`
	Price        float64    `json:"price"`
	Flavors      []Flavor   `json:"flavors"`
	AgeStatement *float64   `json:"age_statement,omitempty"`
}

type PriceStats struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// AnalysisSnapshot summarizes a collection.
type AnalysisSnapshot struct {
	TotalBottles        int                `json:"total_bottles"`
	FlavorFrequency     map[Flavor]int     `json:"flavor_profile"`
	SpiritTypeFrequency map[SpiritType]int `json:"preferred_spirit_types"`
	RegionFrequency     map[Region]int     `json:"preferred_regions"`
	PriceStats          PriceStats         `json:"price_range"`
	AverageAge          *float64           `json:"average_age,omitempty"`
}

// FlattenFlavors returns every flavor tag of the collection, duplicates kept.
func FlattenFlavors(collection []CollectionItem) []Flavor {
	n := 0
	for _, item := range collection {
		n += len(item.Flavors)
	}

	out := make([]Flavor, 0, n)
	for _, item := range collection {
		out = append(out, item.Flavors...)
	}
	return out
}
