package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// OrderService exposes a customer's own cart and orders.
type OrderService interface {
	GetCart(ctx context.Context, userID uint) (*model.Cart, error)
	ListOrders(ctx context.Context, userID uint) ([]model.Order, error)
	GetOrder(ctx context.Context, userID, orderID uint) (*model.Order, error)
}

type orderService struct {
	orders repository.OrderRepository
	carts  repository.CartRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orders repository.OrderRepository, carts repository.CartRepository) OrderService {
	return &orderService{orders: orders, carts: carts}
}

// GetCart returns the user's cart, creating an empty one on first access.
func (s *orderService) GetCart(ctx context.Context, userID uint) (*model.Cart, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = &model.Cart{UserID: userID, Items: []model.CartItem{}}
	if err := s.carts.Create(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID uint) ([]model.Order, error) {
	return s.orders.FindByUserID(ctx, userID)
}

// GetOrder returns one of the user's orders. A missing order and another
// user's order produce the same not-found error.
func (s *orderService) GetOrder(ctx context.Context, userID, orderID uint) (*model.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, apperrors.ErrOrderNotFound
	}
	return order, nil
}
