package postgres

import (
	"context"
	"fmt"
	"quickBite/domain"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

// Create persists the order and its items in one transaction.
func (r *OrdersRepository) Create(ctx context.Context, order *domain.Order) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (r *OrdersRepository) FindAllByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	var orders []domain.Order

	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.MenuItem").
		Order("id desc").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

func (r *OrdersRepository) FindByID(ctx context.Context, userID, orderID uint) (domain.Order, error) {
	var order domain.Order

	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		Preload("Items.MenuItem").
		First(&order).Error
	if err != nil {
		return domain.Order{}, err
	}

	return order, nil
}
