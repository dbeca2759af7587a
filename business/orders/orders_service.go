package orders

import (
	"context"
	"errors"
	"quickBite/domain"
	"quickBite/pkg/logger"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrdersRepository contract interface
type OrdersRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindAllByUser(ctx context.Context, userID uint) ([]domain.Order, error)
	FindByID(ctx context.Context, userID, orderID uint) (domain.Order, error)
}

// CartRepository contract interface
type CartRepository interface {
	FindByUser(ctx context.Context, userID uint) (domain.Cart, error)
	FindLines(ctx context.Context, cartID uint) ([]domain.CartItem, error)
}

type ordersService struct {
	ordersRepo OrdersRepository
	cartRepo   CartRepository
}

func NewOrdersService(ordersRepo OrdersRepository, cartRepo CartRepository) *ordersService {
	return &ordersService{
		ordersRepo: ordersRepo,
		cartRepo:   cartRepo,
	}
}

// PlaceOrder snapshots the current cart into a persistent Order with
// its items. The cart itself stays populated, clearing it is a product
// decision that has not been made.
func (s *ordersService) PlaceOrder(ctx context.Context, userID uint, paymentMethod string) (domain.Order, error) {
	paymentMethod = strings.TrimSpace(paymentMethod)
	if paymentMethod == "" {
		return domain.Order{}, errors.New("please select a payment method")
	}

	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, errors.New("cart is empty")
		}
		return domain.Order{}, err
	}

	lines, err := s.cartRepo.FindLines(ctx, cart.ID)
	if err != nil {
		return domain.Order{}, err
	}

	if len(lines) == 0 {
		return domain.Order{}, errors.New("cart is empty")
	}

	view := domain.BuildCartView(lines)

	order := domain.Order{
		UserID:        userID,
		Reference:     uuid.NewString(),
		PaymentMethod: paymentMethod,
		TotalPrice:    view.Total,
	}
	for _, line := range lines {
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
		})
	}

	if err := s.ordersRepo.Create(ctx, &order); err != nil {
		logger.Error("Failed to create order", err)
		return domain.Order{}, err
	}

	return order, nil
}

func (s *ordersService) ListOrders(ctx context.Context, userID uint) ([]domain.Order, error) {
	return s.ordersRepo.FindAllByUser(ctx, userID)
}

func (s *ordersService) GetOrder(ctx context.Context, userID, orderID uint) (domain.Order, error) {
	return s.ordersRepo.FindByID(ctx, userID, orderID)
}
