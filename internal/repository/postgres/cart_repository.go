package postgres

import (
	"context"
	"fmt"
	"quickBite/domain"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{
		DB: db,
	}
}

// GetOrCreate returns the user's cart, creating it on first use. The
// insert rides ON CONFLICT on carts.user_id so concurrent requests from
// the same user cannot produce two carts.
func (r *CartRepository) GetOrCreate(ctx context.Context, userID uint) (domain.Cart, error) {
	cart := domain.Cart{UserID: userID}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&cart).Error
	if err != nil {
		return domain.Cart{}, fmt.Errorf("failed to create cart: %w", err)
	}

	// conflict means the cart already existed, fetch it
	if cart.ID == 0 {
		if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error; err != nil {
			return domain.Cart{}, fmt.Errorf("failed to fetch cart: %w", err)
		}
	}

	return cart, nil
}

// FindByUser returns gorm.ErrRecordNotFound untouched when the user has
// never added anything to a cart.
func (r *CartRepository) FindByUser(ctx context.Context, userID uint) (domain.Cart, error) {
	var cart domain.Cart

	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		return domain.Cart{}, err
	}

	return cart, nil
}

// UpsertLine inserts a cart line with quantity 1, or bumps the existing
// line's quantity by exactly 1. The unique index on (cart_id,
// menu_item_id) plus ON CONFLICT keeps this atomic under concurrent
// adds, so the same menu item never occupies two rows of one cart.
func (r *CartRepository) UpsertLine(ctx context.Context, cartID, menuItemID uint) error {
	line := domain.CartItem{
		CartID:     cartID,
		MenuItemID: menuItemID,
		Quantity:   1,
	}

	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "menu_item_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("cart_items.quantity + 1"),
				"updated_at": time.Now(),
			}),
		}).
		Create(&line).Error
	if err != nil {
		return fmt.Errorf("failed to upsert cart line: %w", err)
	}

	return nil
}

func (r *CartRepository) FindLines(ctx context.Context, cartID uint) ([]domain.CartItem, error) {
	var lines []domain.CartItem

	err := r.DB.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Preload("MenuItem").
		Order("id").
		Find(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find cart lines: %w", err)
	}

	return lines, nil
}

// DeleteLine removes a cart line by id, scoped to the given user's cart.
// A line belonging to another user's cart is reported as not found, the
// same as a line that does not exist at all.
func (r *CartRepository) DeleteLine(ctx context.Context, userID, lineID uint) error {
	result := r.DB.WithContext(ctx).
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", lineID, userID).
		Delete(&domain.CartItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete cart line: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
