package recommendation

import (
	"sort"

	"bobTheBar/domain"
)

// Rank runs every scorer over the same inputs and merges their candidates.
func Rank(
	scorers []Scorer,
	snapshot domain.AnalysisSnapshot,
	catalog []domain.Bottle,
	userFlavors []domain.Flavor,
) []domain.Recommendation {
	if len(catalog) == 0 {
		return []domain.Recommendation{}
	}

	pooled := make([]domain.Recommendation, 0, len(catalog))
	for _, score := range scorers {
		pooled = append(pooled, score(snapshot, catalog, userFlavors)...)
	}

	return DedupeAndSort(pooled)
}

// DedupeAndSort keeps one recommendation per bottle, the one with the strictly
// highest score (first seen wins ties), ordered by descending score.
func DedupeAndSort(recs []domain.Recommendation) []domain.Recommendation {
	index := make(map[string]int, len(recs))
	unique := make([]domain.Recommendation, 0, len(recs))

	for _, rec := range recs {
		i, seen := index[rec.BottleID]
		if !seen {
			index[rec.BottleID] = len(unique)
			unique = append(unique, rec)
			continue
		}
		if rec.Score > unique[i].Score {
			unique[i] = rec
		}
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Score > unique[j].Score
	})

	return unique
}
