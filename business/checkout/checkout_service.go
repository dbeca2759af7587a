package checkout

import (
	"context"
	"errors"
	"fmt"
	"quickBite/domain"
	"strings"

	"gorm.io/gorm"
)

// CartRepository contract interface
type CartRepository interface {
	FindByUser(ctx context.Context, userID uint) (domain.Cart, error)
	FindLines(ctx context.Context, cartID uint) ([]domain.CartItem, error)
}

type checkoutService struct {
	cartRepo CartRepository
}

func NewCheckoutService(cartRepo CartRepository) *checkoutService {
	return &checkoutService{
		cartRepo: cartRepo,
	}
}

// OrderSummary is the confirmation view: the cart contents labelled
// with the chosen payment method.
type OrderSummary struct {
	domain.CartView
	PaymentMethod string `json:"payment_method"`
}

// SelectPaymentMethod validates the selection and returns the
// final-order path carrying the method as a path parameter.
func (s *checkoutService) SelectPaymentMethod(method string) (string, error) {
	method = strings.TrimSpace(method)
	if method == "" {
		return "", errors.New("please select a payment method")
	}

	return fmt.Sprintf("/api/v1/final_order/%s", method), nil
}

// FinalOrder recomputes the cart exactly as view-cart does. It writes
// no Order record and leaves the cart populated, checkout here is a
// simulated confirmation only.
func (s *checkoutService) FinalOrder(ctx context.Context, userID uint, paymentMethod string) (OrderSummary, error) {
	if strings.TrimSpace(paymentMethod) == "" {
		return OrderSummary{}, errors.New("please select a payment method")
	}

	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderSummary{CartView: domain.EmptyCartView(), PaymentMethod: paymentMethod}, nil
		}
		return OrderSummary{}, err
	}

	lines, err := s.cartRepo.FindLines(ctx, cart.ID)
	if err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		CartView:      domain.BuildCartView(lines),
		PaymentMethod: paymentMethod,
	}, nil
}
