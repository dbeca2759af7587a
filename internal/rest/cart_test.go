//go:build !integration

package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"quickBite/domain"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type fakeCartService struct {
	items map[uint]domain.MenuItem
	view  domain.CartView
	lines map[uint]uint // line id -> owning user id
}

func (f *fakeCartService) AddItem(_ context.Context, _, menuItemID uint) (domain.MenuItem, error) {
	item, ok := f.items[menuItemID]
	if !ok {
		return domain.MenuItem{}, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeCartService) View(_ context.Context, _ uint) (domain.CartView, error) {
	return f.view, nil
}

func (f *fakeCartService) RemoveLine(_ context.Context, userID, lineID uint) error {
	owner, ok := f.lines[lineID]
	if !ok || owner != userID {
		return gorm.ErrRecordNotFound
	}
	delete(f.lines, lineID)
	return nil
}

func newCartContext(t *testing.T, method, target, paramName, paramValue string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint(7))
	if paramName != "" {
		c.SetParamNames(paramName)
		c.SetParamValues(paramValue)
	}

	return c, rec
}

func TestCartAddUnknownItemReturns404(t *testing.T) {
	handler := NewCartHandler(&fakeCartService{items: map[uint]domain.MenuItem{}})

	c, rec := newCartContext(t, http.MethodPost, "/api/v1/cart/add/99", "item_id", "99")

	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestCartAddReturnsAcknowledgment(t *testing.T) {
	svc := &fakeCartService{items: map[uint]domain.MenuItem{
		1: {ID: 1, ItemName: "Margherita", Price: decimal.RequireFromString("10.00")},
	}}
	handler := NewCartHandler(svc)

	c, rec := newCartContext(t, http.MethodPost, "/api/v1/cart/add/1", "item_id", "1")

	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Item added to cart!") {
		t.Errorf("missing acknowledgment message, body: %s", rec.Body.String())
	}
}

func TestCartViewRendersTotal(t *testing.T) {
	svc := &fakeCartService{
		view: domain.CartView{
			Lines: []domain.CartLine{{
				ID: 1, MenuItemID: 1, ItemName: "Margherita",
				UnitPrice: decimal.RequireFromString("10.00"),
				Quantity:  2,
				Subtotal:  decimal.RequireFromString("20.00"),
			}},
			Total: decimal.RequireFromString("20.00"),
		},
	}
	handler := NewCartHandler(svc)

	c, rec := newCartContext(t, http.MethodGet, "/api/v1/cart", "", "")

	if err := handler.View(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `"total":"20"`) {
		t.Errorf("expected total in body: %s", body)
	}
	if !strings.Contains(body, `"quantity":2`) {
		t.Errorf("expected quantity in body: %s", body)
	}
}

func TestCartViewEmpty(t *testing.T) {
	handler := NewCartHandler(&fakeCartService{view: domain.EmptyCartView()})

	c, rec := newCartContext(t, http.MethodGet, "/api/v1/cart", "", "")

	if err := handler.View(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `"items":[]`) {
		t.Errorf("expected empty items list: %s", body)
	}
	if !strings.Contains(body, `"total":"0"`) {
		t.Errorf("expected zero total: %s", body)
	}
}

func TestCartRemoveForeignLineReturns404(t *testing.T) {
	svc := &fakeCartService{lines: map[uint]uint{5: 8}} // line 5 belongs to user 8
	handler := NewCartHandler(svc)

	c, rec := newCartContext(t, http.MethodDelete, "/api/v1/cart/remove/5", "item_id", "5")

	if err := handler.Remove(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a foreign cart line, got %d", rec.Code)
	}
	if _, still := svc.lines[5]; !still {
		t.Error("foreign line must not be deleted")
	}
}

func TestCartRemoveOwnLine(t *testing.T) {
	svc := &fakeCartService{lines: map[uint]uint{5: 7}}
	handler := NewCartHandler(svc)

	c, rec := newCartContext(t, http.MethodDelete, "/api/v1/cart/remove/5", "item_id", "5")

	if err := handler.Remove(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if len(svc.lines) != 0 {
		t.Error("expected line removed")
	}
}
