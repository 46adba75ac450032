// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

var (
	// ErrEmptyCart is returned when an order is placed against an empty cart
	ErrEmptyCart = errors.New("cannot place an order for an empty cart")

	// ErrOrderNotFound is returned when no order exists for an order number
	ErrOrderNotFound = errors.New("order not found")
)

// Service handles checkout business logic. Completing a checkout snapshots
// the cart into an order and clears the cart; placed orders are kept in
// memory for lookup and receipts.
type Service struct {
	mu        sync.RWMutex
	orders    map[string]*Order
	cartStore *cart.Store
	config    *config.Config
	logger    *logrus.Logger
}

// NewService creates a new checkout service
func NewService(cartStore *cart.Store, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		orders:    make(map[string]*Order),
		cartStore: cartStore,
		config:    cfg,
		logger:    logger,
	}
}

// CustomerDetails represents the checkout form's customer section
type CustomerDetails struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
}

// ShippingAddress represents the checkout form's address section
type ShippingAddress struct {
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

// PlaceOrderRequest represents a checkout submission
type PlaceOrderRequest struct {
	Customer CustomerDetails `json:"customer" binding:"required"`
	Shipping ShippingAddress `json:"shipping" binding:"required"`
	Notes    string          `json:"notes"`
}

// Order is the completed-checkout snapshot: the line items and totals as
// they were at placement, frozen
type Order struct {
	OrderNumber string          `json:"order_number"`
	Items       []cart.LineItem `json:"items"`
	Totals      cart.Totals     `json:"totals"`
	Currency    string          `json:"currency"`
	Customer    CustomerDetails `json:"customer"`
	Shipping    ShippingAddress `json:"shipping"`
	Notes       string          `json:"notes,omitempty"`
	PlacedAt    time.Time       `json:"placed_at"`
}

// PlaceOrder snapshots the current cart into an order and clears the cart
func (s *Service) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*Order, error) {
	items := s.cartStore.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &Order{
		OrderNumber: newOrderNumber(),
		Items:       items,
		Totals:      s.cartStore.Totals(),
		Currency:    s.config.Pricing.Currency,
		Customer:    req.Customer,
		Shipping:    req.Shipping,
		Notes:       req.Notes,
		PlacedAt:    time.Now().UTC(),
	}

	s.mu.Lock()
	s.orders[order.OrderNumber] = order
	s.mu.Unlock()

	// Checkout completion destroys the cart collection
	s.cartStore.Clear(ctx)

	s.logger.WithFields(logrus.Fields{
		"order_number": order.OrderNumber,
		"item_count":   order.Totals.ItemCount,
		"total_amount": order.Totals.TotalAmount,
	}).Info("Order placed")

	return order, nil
}

// GetOrder returns a previously placed order by its order number
func (s *Service) GetOrder(orderNumber string) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[orderNumber]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func newOrderNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + id[:10]
}
