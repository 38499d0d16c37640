package recommendation

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"bobTheBar/domain"
)

// Scorer proposes candidate recommendations from one heuristic. Scorers are
// pure: same inputs, same output.
type Scorer func(snapshot domain.AnalysisSnapshot, catalog []domain.Bottle, userFlavors []domain.Flavor) []domain.Recommendation

// Scorers returns the fixed, ordered scorer pipeline for cfg. Order matters
// for dedup ties: earlier scorers win equal scores.
func Scorers(cfg Config) []Scorer {
	return []Scorer{
		SimilarityScorer(cfg),
		PriceRangeScorer(cfg),
		DiversificationScorer(cfg),
	}
}

// SimilarityScorer surfaces bottles sharing at least one of the collection's
// top flavors while staying below the similarity threshold.
func SimilarityScorer(cfg Config) Scorer {
	return func(snapshot domain.AnalysisSnapshot, catalog []domain.Bottle, userFlavors []domain.Flavor) []domain.Recommendation {
		top := TopFlavors(snapshot.FlavorFrequency, cfg.TopFlavors)
		if len(top) == 0 {
			return nil
		}

		userSet := flavorSet(userFlavors)
		recs := make([]domain.Recommendation, 0)

		for _, b := range catalog {
			itemSet := flavorSet(b.Flavors)

			matched := make([]string, 0, len(top))
			for _, f := range top {
				if _, ok := itemSet[f]; ok {
					matched = append(matched, string(f))
				}
			}
			if len(matched) == 0 {
				continue
			}

			if FlavorSimilarity(itemSet, userSet) >= cfg.SimilarityThreshold {
				continue
			}

			strength := float64(len(matched)) / float64(len(top))
			recs = append(recs, domain.NewRecommendation(b,
				cfg.SimilarBand.At(strength),
				domain.MatchSimilar,
				"Matches your top flavors: "+strings.Join(matched, ", "),
			))
		}

		return recs
	}
}

// PriceRangeScorer surfaces bottles priced within [min*0.9, max*1.1] of the
// collection, scoring those closer to the collection average higher.
func PriceRangeScorer(cfg Config) Scorer {
	return func(snapshot domain.AnalysisSnapshot, catalog []domain.Bottle, _ []domain.Flavor) []domain.Recommendation {
		lower := snapshot.PriceStats.Min * cfg.PriceLowerFactor
		upper := snapshot.PriceStats.Max * cfg.PriceUpperFactor
		avg := snapshot.PriceStats.Average
		halfWidth := math.Max(avg-lower, upper-avg)

		detail := fmt.Sprintf("Fits your preferred price range ($%.2f-$%.2f)", lower, upper)
		recs := make([]domain.Recommendation, 0)

		for _, b := range catalog {
			if b.Price < lower || b.Price > upper {
				continue
			}

			strength := 1.0
			if halfWidth > 0 {
				strength = 1 - math.Abs(b.Price-avg)/halfWidth
			}

			recs = append(recs, domain.NewRecommendation(b,
				cfg.PriceRangeBand.At(strength),
				domain.MatchPriceRange,
				detail,
			))
		}

		return recs
	}
}

// DiversificationScorer surfaces bottles of spirit types absent from the
// collection. Bottles whose flavors the user already likes score higher.
func DiversificationScorer(cfg Config) Scorer {
	return func(snapshot domain.AnalysisSnapshot, catalog []domain.Bottle, userFlavors []domain.Flavor) []domain.Recommendation {
		missing := ComplementaryTypes(cfg.SpiritTypes, snapshot.SpiritTypeFrequency)
		if len(missing) == 0 {
			return nil
		}

		missingSet := make(map[domain.SpiritType]struct{}, len(missing))
		for _, st := range missing {
			missingSet[st] = struct{}{}
		}

		userSet := flavorSet(userFlavors)
		recs := make([]domain.Recommendation, 0)

		for _, b := range catalog {
			if _, ok := missingSet[b.SpiritType]; !ok {
				continue
			}

			recs = append(recs, domain.NewRecommendation(b,
				cfg.ComplementaryBand.At(flavorOverlap(flavorSet(b.Flavors), userSet)),
				domain.MatchComplementary,
				fmt.Sprintf("Diversifies your collection with %s", b.SpiritType),
			))
		}

		return recs
	}
}

// TopFlavors returns up to n flavors by descending count. Equal counts are
// ordered lexicographically so the result does not depend on map order.
func TopFlavors(freq map[domain.Flavor]int, n int) []domain.Flavor {
	flavors := make([]domain.Flavor, 0, len(freq))
	for f := range freq {
		flavors = append(flavors, f)
	}

	sort.Slice(flavors, func(i, j int) bool {
		ci, cj := freq[flavors[i]], freq[flavors[j]]
		if ci != cj {
			return ci > cj
		}
		return flavors[i] < flavors[j]
	})

	if len(flavors) > n {
		flavors = flavors[:n]
	}
	return flavors
}

// FlavorSimilarity is |a ∩ b| / max(|a|, |b|) over distinct tags.
func FlavorSimilarity(a, b map[domain.Flavor]struct{}) float64 {
	denom := len(a)
	if len(b) > denom {
		denom = len(b)
	}
	if denom == 0 {
		return 0
	}
	return float64(intersectionSize(a, b)) / float64(denom)
}

// ComplementaryTypes lists the entries of known that are not keys of owned,
// in the order of known.
func ComplementaryTypes(known []domain.SpiritType, owned map[domain.SpiritType]int) []domain.SpiritType {
	out := make([]domain.SpiritType, 0, len(known))
	for _, st := range known {
		if _, ok := owned[st]; !ok {
			out = append(out, st)
		}
	}
	return out
}

func flavorOverlap(item, user map[domain.Flavor]struct{}) float64 {
	if len(item) == 0 {
		return 0
	}
	return float64(intersectionSize(item, user)) / float64(len(item))
}

func intersectionSize(a, b map[domain.Flavor]struct{}) int {
	n := 0
	for f := range a {
		if _, ok := b[f]; ok {
			n++
		}
	}
	return n
}

func flavorSet(flavors []domain.Flavor) map[domain.Flavor]struct{} {
	set := make(map[domain.Flavor]struct{}, len(flavors))
	for _, f := range flavors {
		set[f] = struct{}{}
	}
	return set
}
