package rest

import (
	"context"
	"net/http"
	"quickBite/business/checkout"
	"quickBite/pkg/logger"
	"quickBite/pkg/metrics"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CheckoutService interface {
	SelectPaymentMethod(method string) (string, error)
	FinalOrder(ctx context.Context, userID uint, paymentMethod string) (checkout.OrderSummary, error)
}

type CheckoutHandler struct {
	checkoutService CheckoutService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewCheckoutHandler(checkoutService CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

type SelectPaymentRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// SelectPayment rejects an empty selection so the confirmation view can
// never be reached without a chosen method.
func (h *CheckoutHandler) SelectPayment(c echo.Context) error {
	var request SelectPaymentRequest

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	finalOrderPath, err := h.checkoutService.SelectPaymentMethod(request.PaymentMethod)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"payment_method": request.PaymentMethod,
		"final_order":    finalOrderPath,
	}))
}

func (h *CheckoutHandler) FinalOrder(c echo.Context) error {
	userID := c.Get("user_id").(uint)
	paymentMethod := c.Param("payment_method")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	summary, err := h.checkoutService.FinalOrder(ctx, userID, paymentMethod)
	if err != nil {
		logger.Error("Failed to build final order summary", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	metrics.CheckoutTotal.Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(summary))
}
