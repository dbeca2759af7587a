//go:build !integration

package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"quickBite/business/checkout"
	"quickBite/domain"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type fakeCheckoutService struct {
	summary checkout.OrderSummary
}

func (f *fakeCheckoutService) SelectPaymentMethod(method string) (string, error) {
	if strings.TrimSpace(method) == "" {
		return "", errEmptyMethod
	}
	return "/api/v1/final_order/" + method, nil
}

func (f *fakeCheckoutService) FinalOrder(_ context.Context, _ uint, method string) (checkout.OrderSummary, error) {
	summary := f.summary
	summary.PaymentMethod = method
	return summary, nil
}

var errEmptyMethod = errors.New("please select a payment method")

func TestSelectPaymentRejectsEmptySelection(t *testing.T) {
	handler := NewCheckoutHandler(&fakeCheckoutService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payment", strings.NewReader(`{"payment_method":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(7))

	if err := handler.SelectPayment(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty payment method, got %d", rec.Code)
	}
}

func TestSelectPaymentForwardsMethod(t *testing.T) {
	handler := NewCheckoutHandler(&fakeCheckoutService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payment", strings.NewReader(`{"payment_method":"card"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(7))

	if err := handler.SelectPayment(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/api/v1/final_order/card") {
		t.Errorf("expected final order path in body: %s", rec.Body.String())
	}
}

func TestFinalOrderLabelsSummary(t *testing.T) {
	handler := NewCheckoutHandler(&fakeCheckoutService{
		summary: checkout.OrderSummary{CartView: domain.EmptyCartView()},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/final_order/cash", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(7))
	c.SetParamNames("payment_method")
	c.SetParamValues("cash")

	if err := handler.FinalOrder(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"payment_method":"cash"`) {
		t.Errorf("expected payment method label in body: %s", rec.Body.String())
	}
}
