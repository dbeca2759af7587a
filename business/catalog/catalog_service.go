package catalog

import (
	"context"
	"errors"
	"quickBite/domain"
	"quickBite/pkg/logger"
)

// CatalogRepository contract interface
type CatalogRepository interface {
	FindAllRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	FindRestaurantByID(ctx context.Context, id uint) (domain.Restaurant, error)
	FindMenuByRestaurant(ctx context.Context, restaurantID uint) ([]domain.MenuItem, error)
	FindMenuItemByID(ctx context.Context, id uint) (domain.MenuItem, error)
	CreateRestaurant(ctx context.Context, restaurant *domain.Restaurant) error
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
}

type catalogService struct {
	catalogRepo CatalogRepository
}

func NewCatalogService(catalogRepo CatalogRepository) *catalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
	}
}

func (s *catalogService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.catalogRepo.FindAllRestaurants(ctx)
}

// GetRestaurantMenu passes the repository's not-found error through so
// the handler can answer 404 for an unknown restaurant id.
func (s *catalogService) GetRestaurantMenu(ctx context.Context, restaurantID uint) (domain.Restaurant, []domain.MenuItem, error) {
	restaurant, err := s.catalogRepo.FindRestaurantByID(ctx, restaurantID)
	if err != nil {
		return domain.Restaurant{}, nil, err
	}

	items, err := s.catalogRepo.FindMenuByRestaurant(ctx, restaurantID)
	if err != nil {
		logger.Error("Failed to load menu items", err)
		return domain.Restaurant{}, nil, err
	}

	return restaurant, items, nil
}

func (s *catalogService) CreateRestaurant(ctx context.Context, restaurant *domain.Restaurant) error {
	if restaurant.Rating < 0 || restaurant.Rating > 5 {
		return errors.New("rating must be between 0 and 5")
	}

	return s.catalogRepo.CreateRestaurant(ctx, restaurant)
}

func (s *catalogService) AddMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if item.Price.IsNegative() {
		return errors.New("price must not be negative")
	}

	// reject items pointing at a restaurant that does not exist
	if _, err := s.catalogRepo.FindRestaurantByID(ctx, item.RestaurantID); err != nil {
		return err
	}

	return s.catalogRepo.CreateMenuItem(ctx, item)
}
