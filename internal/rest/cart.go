package rest

import (
	"context"
	"errors"
	"net/http"
	"quickBite/domain"
	"quickBite/pkg/logger"
	"quickBite/pkg/metrics"
	"strconv"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CartService interface {
	AddItem(ctx context.Context, userID, menuItemID uint) (domain.MenuItem, error)
	View(ctx context.Context, userID uint) (domain.CartView, error)
	RemoveLine(ctx context.Context, userID, lineID uint) error
}

type CartHandler struct {
	cartService CartService
	timeout     time.Duration
}

func NewCartHandler(cartService CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		timeout:     10 * time.Second,
	}
}

func (h *CartHandler) Add(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid menu item id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item, err := h.cartService.AddItem(ctx, userID, uint(itemID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: "menu item not found"})
		}
		logger.Error("Failed to add item to cart", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.CartOperations.WithLabelValues("add").Inc()

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(map[string]interface{}{
		"message": "Item added to cart!",
		"item":    item,
	}))
}

func (h *CartHandler) View(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	view, err := h.cartService.View(ctx, userID)
	if err != nil {
		logger.Error("Failed to view cart", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(view))
}

func (h *CartHandler) Remove(c echo.Context) error {
	userID := c.Get("user_id").(uint)

	lineID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid cart item id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.cartService.RemoveLine(ctx, userID, uint(lineID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: "item not found in your cart"})
		}
		logger.Error("Failed to remove cart line", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.CartOperations.WithLabelValues("remove").Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"message": "Item removed from cart.",
	}))
}
