//go:build !integration

package cart

import (
	"context"
	"errors"
	"quickBite/domain"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// in-memory stand-ins for the postgres repositories

type fakeCatalog struct {
	items map[uint]domain.MenuItem
}

func (f *fakeCatalog) FindMenuItemByID(_ context.Context, id uint) (domain.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return domain.MenuItem{}, gorm.ErrRecordNotFound
	}
	return item, nil
}

type fakeCartRepo struct {
	catalog    *fakeCatalog
	carts      map[uint]domain.Cart // by user id
	lines      map[uint]domain.CartItem
	nextCartID uint
	nextLineID uint
}

func newFakeCartRepo(catalog *fakeCatalog) *fakeCartRepo {
	return &fakeCartRepo{
		catalog: catalog,
		carts:   make(map[uint]domain.Cart),
		lines:   make(map[uint]domain.CartItem),
	}
}

func (f *fakeCartRepo) GetOrCreate(_ context.Context, userID uint) (domain.Cart, error) {
	if cart, ok := f.carts[userID]; ok {
		return cart, nil
	}
	f.nextCartID++
	cart := domain.Cart{ID: f.nextCartID, UserID: userID}
	f.carts[userID] = cart
	return cart, nil
}

func (f *fakeCartRepo) FindByUser(_ context.Context, userID uint) (domain.Cart, error) {
	cart, ok := f.carts[userID]
	if !ok {
		return domain.Cart{}, gorm.ErrRecordNotFound
	}
	return cart, nil
}

func (f *fakeCartRepo) UpsertLine(_ context.Context, cartID, menuItemID uint) error {
	for id, line := range f.lines {
		if line.CartID == cartID && line.MenuItemID == menuItemID {
			line.Quantity++
			f.lines[id] = line
			return nil
		}
	}
	f.nextLineID++
	f.lines[f.nextLineID] = domain.CartItem{
		ID:         f.nextLineID,
		CartID:     cartID,
		MenuItemID: menuItemID,
		Quantity:   1,
	}
	return nil
}

func (f *fakeCartRepo) FindLines(_ context.Context, cartID uint) ([]domain.CartItem, error) {
	var lines []domain.CartItem
	for id := uint(1); id <= f.nextLineID; id++ {
		line, ok := f.lines[id]
		if !ok || line.CartID != cartID {
			continue
		}
		line.MenuItem = f.catalog.items[line.MenuItemID]
		lines = append(lines, line)
	}
	return lines, nil
}

func (f *fakeCartRepo) DeleteLine(_ context.Context, userID, lineID uint) error {
	line, ok := f.lines[lineID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	cart, ok := f.carts[userID]
	if !ok || line.CartID != cart.ID {
		return gorm.ErrRecordNotFound
	}
	delete(f.lines, lineID)
	return nil
}

func price(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestService() (*cartService, *fakeCartRepo) {
	catalog := &fakeCatalog{items: map[uint]domain.MenuItem{
		1: {ID: 1, RestaurantID: 1, ItemName: "Margherita", Price: price("10.00")},
		2: {ID: 2, RestaurantID: 1, ItemName: "Calzone", Price: price("7.25")},
	}}
	repo := newFakeCartRepo(catalog)
	return NewCartService(repo, catalog), repo
}

func TestAddItemTwiceIncrementsQuantity(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, 7, 1); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := svc.AddItem(ctx, 7, 1); err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(repo.lines) != 1 {
		t.Fatalf("expected 1 cart line, got %d", len(repo.lines))
	}

	view, err := svc.View(ctx, 7)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(view.Lines) != 1 {
		t.Fatalf("expected 1 line in view, got %d", len(view.Lines))
	}
	if view.Lines[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", view.Lines[0].Quantity)
	}
	if got := view.Lines[0].Subtotal.String(); got != "20" {
		t.Errorf("expected subtotal 20, got %s", got)
	}
	if got := view.Total.String(); got != "20" {
		t.Errorf("expected total 20, got %s", got)
	}
}

func TestAddItemUnknownMenuItem(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.AddItem(context.Background(), 7, 99)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found, got %v", err)
	}

	if len(repo.carts) != 0 {
		t.Errorf("adding an unknown item must not create a cart")
	}
}

func TestViewEmptyCart(t *testing.T) {
	svc, _ := newTestService()

	view, err := svc.View(context.Background(), 42)
	if err != nil {
		t.Fatalf("view: %v", err)
	}

	if view.Lines == nil || len(view.Lines) != 0 {
		t.Errorf("expected empty line slice, got %#v", view.Lines)
	}
	if !view.Total.Equal(decimal.Zero) {
		t.Errorf("expected zero total, got %s", view.Total)
	}
}

func TestViewComputesDecimalTotals(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// 2x Margherita (10.00) + 3x Calzone (7.25) = 41.75
	for i := 0; i < 2; i++ {
		if _, err := svc.AddItem(ctx, 7, 1); err != nil {
			t.Fatalf("add margherita: %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		if _, err := svc.AddItem(ctx, 7, 2); err != nil {
			t.Fatalf("add calzone: %v", err)
		}
	}

	view, err := svc.View(ctx, 7)
	if err != nil {
		t.Fatalf("view: %v", err)
	}

	if len(view.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(view.Lines))
	}
	if !view.Total.Equal(price("41.75")) {
		t.Errorf("expected total 41.75, got %s", view.Total)
	}
}

func TestRemoveLineScopedToOwner(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, 7, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	var lineID uint
	for id := range repo.lines {
		lineID = id
	}

	// another user must not be able to delete the line, even knowing its id
	err := svc.RemoveLine(ctx, 8, lineID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found for foreign line, got %v", err)
	}
	if len(repo.lines) != 1 {
		t.Fatalf("foreign delete must not remove the line")
	}

	// the owner can
	if err := svc.RemoveLine(ctx, 7, lineID); err != nil {
		t.Fatalf("owner remove: %v", err)
	}
	if len(repo.lines) != 0 {
		t.Errorf("expected line removed")
	}
}
