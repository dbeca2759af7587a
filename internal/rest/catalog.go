package rest

import (
	"context"
	"errors"
	"net/http"
	"quickBite/domain"
	"quickBite/pkg/logger"
	"strconv"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CatalogService interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurantMenu(ctx context.Context, restaurantID uint) (domain.Restaurant, []domain.MenuItem, error)
	CreateRestaurant(ctx context.Context, restaurant *domain.Restaurant) error
	AddMenuItem(ctx context.Context, item *domain.MenuItem) error
}

type CatalogHandler struct {
	catalogService CatalogService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewCatalogHandler(catalogService CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type CreateRestaurantRequest struct {
	Name     string  `json:"name" validate:"required"`
	Location string  `json:"location" validate:"required"`
	Rating   float64 `json:"rating" validate:"gte=0,lte=5"`
}

type CreateMenuItemRequest struct {
	ItemName string `json:"item_name" validate:"required"`
	Price    string `json:"price" validate:"required"`
}

func (h *CatalogHandler) ListRestaurants(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	restaurants, err := h.catalogService.ListRestaurants(ctx)
	if err != nil {
		logger.Error("Failed to list restaurants", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(restaurants))
}

func (h *CatalogHandler) GetRestaurantMenu(c echo.Context) error {
	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid restaurant id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	restaurant, items, err := h.catalogService.GetRestaurantMenu(ctx, uint(restaurantID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: "restaurant not found"})
		}
		logger.Error("Failed to get restaurant menu", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"restaurant": restaurant,
		"menu_items": items,
	}))
}

func (h *CatalogHandler) CreateRestaurant(c echo.Context) error {
	var request CreateRestaurantRequest

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&request); err != nil {
		logger.Error("Failed to validate restaurant", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	restaurant := domain.Restaurant{
		Name:     request.Name,
		Location: request.Location,
		Rating:   request.Rating,
	}
	if err := h.catalogService.CreateRestaurant(ctx, &restaurant); err != nil {
		logger.Error("Failed to create restaurant", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(restaurant))
}

func (h *CatalogHandler) AddMenuItem(c echo.Context) error {
	restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid restaurant id"})
	}

	var request CreateMenuItemRequest

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&request); err != nil {
		logger.Error("Failed to validate menu item", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	price, err := decimal.NewFromString(request.Price)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid price"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item := domain.MenuItem{
		RestaurantID: uint(restaurantID),
		ItemName:     request.ItemName,
		Price:        price,
	}
	if err := h.catalogService.AddMenuItem(ctx, &item); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: "restaurant not found"})
		}
		logger.Error("Failed to add menu item", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(item))
}
