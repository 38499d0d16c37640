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

type BottleService interface {
	GetAllBottles(ctx context.Context) ([]domain.Bottle, error)
	GetBottleByID(ctx context.Context, id string) (*domain.Bottle, error)
	CreateBottle(ctx context.Context, bottle *domain.Bottle) (*domain.Bottle, error)
}

type BottleHandler struct {
	bottleService BottleService
	validator     *validator.Validate
	timeout       time.Duration
}

func NewBottleHandler(bottleService BottleService, timeout time.Duration) *BottleHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &BottleHandler{
		bottleService: bottleService,
		validator:     NewValidator(),
		timeout:       timeout,
	}
}

type CreateBottleRequest struct {
	Name         string            `json:"name" validate:"required,min=2,max=100"`
	SpiritType   domain.SpiritType `json:"spirit_type" validate:"required,spirit_type"`
	Region       domain.Region     `json:"region" validate:"omitempty,region"`
	Price        float64           `json:"price" validate:"gte=0"`
	Flavors      []domain.Flavor   `json:"flavors" validate:"required,min=1,dive,flavor"`
	AgeStatement *float64          `json:"age_statement" validate:"omitempty,gte=0"`
	ABV          *float64          `json:"abv" validate:"omitempty,gte=0,lte=100"`
	Description  string            `json:"description" validate:"max=500"`
	ImageURL     string            `json:"image_url" validate:"omitempty,url"`
}

func (h *BottleHandler) GetAllBottles(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	bottles, err := h.bottleService.GetAllBottles(ctx)
	if err != nil {
		logger.Error("Failed to find all bottles", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(bottles))
}

func (h *BottleHandler) GetBottleByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	bottle, err := h.bottleService.GetBottleByID(ctx, c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(bottle))
}

func (h *BottleHandler) CreateBottle(c echo.Context) error {
	var req CreateBottleRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate bottle request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	newBottle, err := h.bottleService.CreateBottle(ctx, &domain.Bottle{
		Name:         req.Name,
		SpiritType:   req.SpiritType,
		Region:       req.Region,
		Price:        req.Price,
		Flavors:      req.Flavors,
		AgeStatement: req.AgeStatement,
		ABV:          req.ABV,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		logger.Error("Failed to create bottle", err)
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(newBottle))
}
