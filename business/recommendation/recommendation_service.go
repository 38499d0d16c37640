package recommendation

import (
	"context"
	"fmt"

	"bobTheBar/domain"
	"bobTheBar/pkg/logger"
)

// CatalogRepository is the one external capability the engine consumes.
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]domain.Bottle, error)
}

type Analyzer interface {
	Analyze(collection []domain.CollectionItem) (domain.AnalysisSnapshot, error)
}

type RecommendationService struct {
	catalogRepo CatalogRepository
	analyzer    Analyzer
	scorers     []Scorer
}

func NewRecommendationService(catalogRepo CatalogRepository, analyzer Analyzer, cfg Config) (*RecommendationService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommendation config: %w", err)
	}

	return &RecommendationService{
		catalogRepo: catalogRepo,
		analyzer:    analyzer,
		scorers:     Scorers(cfg),
	}, nil
}

// Recommend scores every catalog bottle against the collection and returns
// the merged ranking. limit <= 0 returns everything.
func (s *RecommendationService) Recommend(
	ctx context.Context,
	collection []domain.CollectionItem,
	limit int,
) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	snapshot, err := s.analyzer.Analyze(collection)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalogRepo.FindAll(ctx)
	if err != nil {
		CatalogFetchFailuresTotal.Inc()
		logger.Error("failed to load catalog", err)
		return nil, fmt.Errorf("%w: load catalog: %w", domain.ErrUpstreamFailure, err)
	}

	recs := Rank(s.scorers, snapshot, catalog, domain.FlattenFlavors(collection))
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}

	for _, r := range recs {
		RecommendationsServedTotal.WithLabelValues(string(r.MatchType)).Inc()
	}

	logger.Debug("recommendations generated",
		"collection_size", len(collection),
		"catalog_size", len(catalog),
		"returned", len(recs),
	)

	return recs, nil
}
