package analysis

import (
	"fmt"

	"bobTheBar/domain"
	"bobTheBar/pkg/logger"
)

type analysisService struct{}

func NewAnalysisService() *analysisService {
	return &analysisService{}
}

// Analyze aggregates flavor, spirit type and region frequencies plus price
// statistics. An empty collection returns a zeroed snapshot together with
// ErrInvalidInput.
func (s *analysisService) Analyze(collection []domain.CollectionItem) (domain.AnalysisSnapshot, error) {
	snapshot := Summarize(collection)
	if len(collection) == 0 {
		return snapshot, fmt.Errorf("%w: collection is empty", domain.ErrInvalidInput)
	}

	logger.Debug("collection analyzed",
		"bottles", snapshot.TotalBottles,
		"distinct_flavors", len(snapshot.FlavorFrequency),
		"spirit_types", len(snapshot.SpiritTypeFrequency),
	)

	return snapshot, nil
}

// Summarize is the pure aggregation behind Analyze. It never fails; empty
// input yields empty maps and zero price stats.
func Summarize(collection []domain.CollectionItem) domain.AnalysisSnapshot {
	snapshot := domain.AnalysisSnapshot{
		TotalBottles:        len(collection),
		FlavorFrequency:     make(map[domain.Flavor]int),
		SpiritTypeFrequency: make(map[domain.SpiritType]int),
		RegionFrequency:     make(map[domain.Region]int),
	}

	prices := make([]float64, 0, len(collection))
	var ageSum float64
	var ageCount int

	for _, item := range collection {
		for _, f := range item.Flavors {
			snapshot.FlavorFrequency[f]++
		}

		if item.SpiritType != "" {
			snapshot.SpiritTypeFrequency[item.SpiritType]++
		}
		if item.Region != "" {
			snapshot.RegionFrequency[item.Region]++
		}

		prices = append(prices, item.Price)

		if item.AgeStatement != nil {
			ageSum += *item.AgeStatement
			ageCount++
		}
	}

	snapshot.PriceStats = priceStats(prices)

	if ageCount > 0 {
		avg := ageSum / float64(ageCount)
		snapshot.AverageAge = &avg
	}

	return snapshot
}

func priceStats(prices []float64) domain.PriceStats {
	if len(prices) == 0 {
		return domain.PriceStats{}
	}

	stats := domain.PriceStats{Min: prices[0], Max: prices[0]}
	var sum float64
	for _, p := range prices {
		sum += p
		if p < stats.Min {
			stats.Min = p
		}
		if p > stats.Max {
			stats.Max = p
		}
	}
	stats.Average = sum / float64(len(prices))

	// float summation can drift a hair outside [min,max] for equal prices
	if stats.Average < stats.Min {
		stats.Average = stats.Min
	}
	if stats.Average > stats.Max {
		stats.Average = stats.Max
	}

	return stats
}
