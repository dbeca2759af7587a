package postgres

import (
	"context"
	"fmt"
	"quickBite/domain"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		DB: db,
	}
}

func (r *CatalogRepository) FindAllRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant

	if err := r.DB.WithContext(ctx).Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to find restaurants: %w", err)
	}

	return restaurants, nil
}

// FindRestaurantByID returns gorm.ErrRecordNotFound untouched so callers
// can translate it to a 404.
func (r *CatalogRepository) FindRestaurantByID(ctx context.Context, id uint) (domain.Restaurant, error) {
	var restaurant domain.Restaurant

	err := r.DB.WithContext(ctx).First(&restaurant, id).Error
	if err != nil {
		return domain.Restaurant{}, err
	}

	return restaurant, nil
}

func (r *CatalogRepository) FindMenuByRestaurant(ctx context.Context, restaurantID uint) ([]domain.MenuItem, error) {
	var items []domain.MenuItem

	err := r.DB.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find menu items: %w", err)
	}

	return items, nil
}

func (r *CatalogRepository) FindMenuItemByID(ctx context.Context, id uint) (domain.MenuItem, error) {
	var item domain.MenuItem

	err := r.DB.WithContext(ctx).First(&item, id).Error
	if err != nil {
		return domain.MenuItem{}, err
	}

	return item, nil
}

func (r *CatalogRepository) CreateRestaurant(ctx context.Context, restaurant *domain.Restaurant) error {
	if err := r.DB.WithContext(ctx).Create(restaurant).Error; err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}

	return nil
}

func (r *CatalogRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	return nil
}
