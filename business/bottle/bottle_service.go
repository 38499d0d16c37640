package bottle

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"bobTheBar/domain"
	"bobTheBar/pkg/logger"

	"github.com/google/uuid"
)

// BottleRepository contract interface
type BottleRepository interface {
	Create(ctx context.Context, bottle *domain.Bottle) error
	FindByID(ctx context.Context, id string) (domain.Bottle, error)
	FindAll(ctx context.Context) ([]domain.Bottle, error)
}

// EmbeddingRepository turns a flavor description into a vector.
type EmbeddingRepository interface {
	GenerateEmbedding(ctx context.Context, input string) ([]float64, error)
}

// CatalogInvalidator drops cached catalog reads after a write.
type CatalogInvalidator interface {
	Invalidate(ctx context.Context) error
}

type bottleService struct {
	bottleRepo    BottleRepository
	embeddingRepo EmbeddingRepository
	invalidator   CatalogInvalidator
}

// NewBottleService wires the catalog service. embeddingRepo and invalidator
// may be nil.
func NewBottleService(bottleRepo BottleRepository, embeddingRepo EmbeddingRepository, invalidator CatalogInvalidator) *bottleService {
	return &bottleService{
		bottleRepo:    bottleRepo,
		embeddingRepo: embeddingRepo,
		invalidator:   invalidator,
	}
}

var imageURLPattern = regexp.MustCompile(`^https?://.+\.(jpg|jpeg|png|webp)$`)

func (s *bottleService) GetAllBottles(ctx context.Context) ([]domain.Bottle, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all bottles")
		return nil, fmt.Errorf("context error: %w", err)
	}

	bottles, err := s.bottleRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to find all bottles", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamFailure, err)
	}

	return bottles, nil
}

func (s *bottleService) GetBottleByID(ctx context.Context, id string) (*domain.Bottle, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: bottle id is required", domain.ErrInvalidInput)
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get bottle by id")
		return nil, fmt.Errorf("context error: %w", err)
	}

	bottle, err := s.bottleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrBottleNotFound) {
			return nil, err
		}
		logger.Error("failed to find bottle by id", err, "id", id)
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamFailure, err)
	}

	return &bottle, nil
}

func (s *bottleService) CreateBottle(ctx context.Context, bottle *domain.Bottle) (*domain.Bottle, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create bottle")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateBottle(bottle); err != nil {
		logger.Error("invalid bottle data", err)
		return nil, err
	}

	bottle.ID = uuid.NewString()
	bottle.Name = strings.TrimSpace(bottle.Name)

	if s.embeddingRepo != nil {
		embedding, err := s.embeddingRepo.GenerateEmbedding(ctx, flavorText(bottle.Flavors))
		if err != nil {
			logger.Error("failed to generate flavor embedding", err)
			return nil, fmt.Errorf("%w: generate embedding: %w", domain.ErrUpstreamFailure, err)
		}
		bottle.Embedding = embedding
	}

	if err := s.bottleRepo.Create(ctx, bottle); err != nil {
		logger.Error("failed to create new bottle", err)
		return nil, fmt.Errorf("%w: create bottle: %w", domain.ErrUpstreamFailure, err)
	}

	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx); err != nil {
			logger.Warn("failed to invalidate catalog cache", err)
		}
	}

	logger.Info("bottle created successfully", "id", bottle.ID, "spirit_type", bottle.SpiritType)

	return bottle, nil
}

func validateBottle(b *domain.Bottle) error {
	invalid := func(msg string) error {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
	}

	name := strings.TrimSpace(b.Name)
	if len(name) < 2 || len(name) > 100 {
		return invalid("name must be between 2 and 100 characters")
	}
	if !b.SpiritType.Valid() {
		return invalid("unknown spirit type")
	}
	if b.Region != "" && !b.Region.Valid() {
		return invalid("unknown region")
	}
	if b.Price < 0 {
		return invalid("price cannot be negative")
	}
	if len(b.Flavors) == 0 {
		return invalid("at least one flavor is required")
	}
	for _, f := range b.Flavors {
		if !f.Valid() {
			return invalid(fmt.Sprintf("unknown flavor %q", f))
		}
	}
	if b.AgeStatement != nil && *b.AgeStatement < 0 {
		return invalid("age statement cannot be negative")
	}
	if b.ABV != nil && (*b.ABV < 0 || *b.ABV > 100) {
		return invalid("abv must be between 0 and 100")
	}
	if len(b.Description) > 500 {
		return invalid("description must be at most 500 characters")
	}
	if b.ImageURL != "" {
		if _, err := url.ParseRequestURI(b.ImageURL); err != nil || !imageURLPattern.MatchString(b.ImageURL) {
			return invalid("invalid image url format")
		}
	}

	return nil
}

func flavorText(flavors []domain.Flavor) string {
	parts := make([]string, len(flavors))
	for i, f := range flavors {
		parts[i] = string(f)
	}
	return strings.Join(parts, ", ")
}
