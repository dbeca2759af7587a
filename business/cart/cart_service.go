package cart

import (
	"context"
	"errors"
	"quickBite/domain"
	"quickBite/pkg/logger"

	"gorm.io/gorm"
)

// CartRepository contract interface
type CartRepository interface {
	GetOrCreate(ctx context.Context, userID uint) (domain.Cart, error)
	FindByUser(ctx context.Context, userID uint) (domain.Cart, error)
	UpsertLine(ctx context.Context, cartID, menuItemID uint) error
	FindLines(ctx context.Context, cartID uint) ([]domain.CartItem, error)
	DeleteLine(ctx context.Context, userID, lineID uint) error
}

// MenuItemFinder resolves menu items from the catalog store.
type MenuItemFinder interface {
	FindMenuItemByID(ctx context.Context, id uint) (domain.MenuItem, error)
}

type cartService struct {
	cartRepo    CartRepository
	catalogRepo MenuItemFinder
}

func NewCartService(cartRepo CartRepository, catalogRepo MenuItemFinder) *cartService {
	return &cartService{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
	}
}

// AddItem resolves the menu item, lazily creates the user's cart and
// upserts the line. Re-adding an item bumps its quantity by exactly 1.
// An unknown menu item surfaces as gorm.ErrRecordNotFound for a 404.
func (s *cartService) AddItem(ctx context.Context, userID, menuItemID uint) (domain.MenuItem, error) {
	item, err := s.catalogRepo.FindMenuItemByID(ctx, menuItemID)
	if err != nil {
		return domain.MenuItem{}, err
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		logger.Error("Failed to get or create cart", err)
		return domain.MenuItem{}, err
	}

	if err := s.cartRepo.UpsertLine(ctx, cart.ID, item.ID); err != nil {
		logger.Error("Failed to upsert cart line", err)
		return domain.MenuItem{}, err
	}

	return item, nil
}

// View returns the cart contents with decimal-exact subtotals. A user
// who never created a cart gets an empty line list and a zero total.
func (s *cartService) View(ctx context.Context, userID uint) (domain.CartView, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.EmptyCartView(), nil
		}
		return domain.CartView{}, err
	}

	lines, err := s.cartRepo.FindLines(ctx, cart.ID)
	if err != nil {
		return domain.CartView{}, err
	}

	return domain.BuildCartView(lines), nil
}

// RemoveLine deletes one cart line, scoped to the caller. Lines in
// other users' carts are indistinguishable from missing ones.
func (s *cartService) RemoveLine(ctx context.Context, userID, lineID uint) error {
	return s.cartRepo.DeleteLine(ctx, userID, lineID)
}
