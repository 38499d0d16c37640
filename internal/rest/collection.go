package rest

import (
	"context"
	"net/http"
	"time"

	"bobTheBar/domain"
	"bobTheBar/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AnalysisService interface {
	Analyze(collection []domain.CollectionItem) (domain.AnalysisSnapshot, error)
}

type RecommendationService interface {
	Recommend(ctx context.Context, collection []domain.CollectionItem, limit int) ([]domain.Recommendation, error)
}

type CollectionHandler struct {
	analysisService       AnalysisService
	recommendationService RecommendationService
	validator             *validator.Validate
	timeout               time.Duration
}

func NewCollectionHandler(analysisService AnalysisService, recommendationService RecommendationService, timeout time.Duration) *CollectionHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CollectionHandler{
		analysisService:       analysisService,
		recommendationService: recommendationService,
		validator:             NewValidator(),
		timeout:               timeout,
	}
}

type CollectionItemRequest struct {
	SpiritType   domain.SpiritType `json:"spirit_type" validate:"required,spirit_type"`
	Region       domain.Region     `json:"region" validate:"omitempty,region"`
	Price        float64           `json:"price" validate:"gte=0"`
	Flavors      []domain.Flavor   `json:"flavors" validate:"required,min=1,dive,flavor"`
	AgeStatement *float64          `json:"age_statement" validate:"omitempty,gte=0"`
}

type CollectionRequest struct {
	Bottles []CollectionItemRequest `json:"bottles" validate:"required,min=1,dive"`
	Limit   int                     `json:"limit" validate:"gte=0,lte=100"`
}

type RecommendationsResponse struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
}

func (r CollectionRequest) toDomain() []domain.CollectionItem {
	items := make([]domain.CollectionItem, len(r.Bottles))
	for i, b := range r.Bottles {
		items[i] = domain.CollectionItem{
			SpiritType:   b.SpiritType,
			Region:       b.Region,
			Price:        b.Price,
			Flavors:      b.Flavors,
			AgeStatement: b.AgeStatement,
		}
	}
	return items
}

func (h *CollectionHandler) bind(c echo.Context) (CollectionRequest, error) {
	var req CollectionRequest

	if err := c.Bind(&req); err != nil {
		return req, err
	}

	if err := h.validator.Struct(&req); err != nil {
		return req, err
	}

	return req, nil
}

func (h *CollectionHandler) Analyze(c echo.Context) error {
	req, err := h.bind(c)
	if err != nil {
		logger.Warn("Invalid collection request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	snapshot, err := h.analysisService.Analyze(req.toDomain())
	if err != nil {
		logger.Error("Failed to analyze collection", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(snapshot))
}

func (h *CollectionHandler) Recommendations(c echo.Context) error {
	req, err := h.bind(c)
	if err != nil {
		logger.Warn("Invalid collection request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.recommendationService.Recommend(ctx, req.toDomain(), req.Limit)
	if err != nil {
		logger.Error("Failed to get recommendations", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(RecommendationsResponse{Recommendations: recs}))
}
