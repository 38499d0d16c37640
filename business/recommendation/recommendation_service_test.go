package recommendation

import (
	"context"
	"errors"
	"math"
	"testing"

	"bobTheBar/business/analysis"
	"bobTheBar/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogRepo struct {
	bottles []domain.Bottle
	err     error
	calls   int
}

func (f *fakeCatalogRepo) FindAll(ctx context.Context) ([]domain.Bottle, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.bottles, nil
}

func newService(t *testing.T, repo CatalogRepository) *RecommendationService {
	t.Helper()
	svc, err := NewRecommendationService(repo, analysis.NewAnalysisService(), DefaultConfig())
	require.NoError(t, err)
	return svc
}

func TestDedupeAndSort_KeepsHigherScore(t *testing.T) {
	recs := []domain.Recommendation{
		{BottleID: "a", Score: 0.65, MatchType: domain.MatchPriceRange},
		{BottleID: "b", Score: 0.55, MatchType: domain.MatchComplementary},
		{BottleID: "a", Score: 0.82, MatchType: domain.MatchSimilar},
	}

	out := DedupeAndSort(recs)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].BottleID)
	assert.Equal(t, 0.82, out[0].Score)
	assert.Equal(t, domain.MatchSimilar, out[0].MatchType)
	assert.Equal(t, "b", out[1].BottleID)
}

func TestDedupeAndSort_TieKeepsFirst(t *testing.T) {
	out := DedupeAndSort([]domain.Recommendation{
		{BottleID: "a", Score: 0.7, MatchType: domain.MatchSimilar},
		{BottleID: "a", Score: 0.7, MatchType: domain.MatchPriceRange},
	})
	require.Len(t, out, 1)
	assert.Equal(t, domain.MatchSimilar, out[0].MatchType)
}

func TestDedupeAndSort_Empty(t *testing.T) {
	out := DedupeAndSort(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestRecommend_EndToEnd(t *testing.T) {
	repo := &fakeCatalogRepo{bottles: []domain.Bottle{
		bottle("whisky", domain.SpiritWhisky, 42, domain.FlavorPeaty),
		bottle("rum", domain.SpiritRum, 30, domain.FlavorSweet),
	}}
	collection := []domain.CollectionItem{item(domain.SpiritWhisky, 40, domain.FlavorPeaty, domain.FlavorSmoky)}

	recs, err := newService(t, repo).Recommend(context.Background(), collection, 0)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 1, repo.calls)

	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}

	got := byID(recs)
	rum := got["rum"]
	assert.Equal(t, domain.MatchComplementary, rum.MatchType)
	assert.True(t, ComplementaryBand.Contains(rum.Score))

	whisky := got["whisky"]
	assert.Contains(t, []domain.MatchType{domain.MatchSimilar, domain.MatchPriceRange}, whisky.MatchType)
	assert.GreaterOrEqual(t, whisky.Score, rum.Score)
	assert.Equal(t, "whisky", recs[0].BottleID)
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	collection := []domain.CollectionItem{item(domain.SpiritGin, 30, domain.FlavorHerbal)}

	recs, err := newService(t, &fakeCatalogRepo{}).Recommend(context.Background(), collection, 0)
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestRecommend_EmptyCollection(t *testing.T) {
	repo := &fakeCatalogRepo{bottles: []domain.Bottle{bottle("x", domain.SpiritRum, 10, domain.FlavorSweet)}}

	_, err := newService(t, repo).Recommend(context.Background(), nil, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, 0, repo.calls)
}

func TestRecommend_CatalogFailure(t *testing.T) {
	cause := errors.New("connection refused")
	collection := []domain.CollectionItem{item(domain.SpiritGin, 30, domain.FlavorHerbal)}

	_, err := newService(t, &fakeCatalogRepo{err: cause}).Recommend(context.Background(), collection, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUpstreamFailure))
	assert.True(t, errors.Is(err, cause))
}

func TestRecommend_Limit(t *testing.T) {
	repo := &fakeCatalogRepo{bottles: []domain.Bottle{
		bottle("a", domain.SpiritRum, 30, domain.FlavorSweet),
		bottle("b", domain.SpiritVodka, 30, domain.FlavorDry),
		bottle("c", domain.SpiritCognac, 30, domain.FlavorOaky),
	}}
	collection := []domain.CollectionItem{item(domain.SpiritGin, 30, domain.FlavorHerbal)}

	recs, err := newService(t, repo).Recommend(context.Background(), collection, 2)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestRecommend_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := &fakeCatalogRepo{}
	_, err := newService(t, repo).Recommend(ctx, []domain.CollectionItem{item(domain.SpiritGin, 30, domain.FlavorHerbal)}, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, repo.calls)
}

func TestNewRecommendationService_RejectsBadThreshold(t *testing.T) {
	_, err := NewRecommendationService(&fakeCatalogRepo{}, analysis.NewAnalysisService(), DefaultConfig().WithThreshold(0))
	assert.Error(t, err)

	_, err = NewRecommendationService(&fakeCatalogRepo{}, analysis.NewAnalysisService(), DefaultConfig().WithThreshold(1.5))
	assert.Error(t, err)

	_, err = NewRecommendationService(&fakeCatalogRepo{}, analysis.NewAnalysisService(), DefaultConfig().WithThreshold(math.NaN()))
	assert.Error(t, err)
}
