package app

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cimillas/ultimate-shop/services/order/internal/clock"
	"github.com/cimillas/ultimate-shop/services/order/internal/domain"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	GetOrderByID(ctx context.Context, id string) (domain.Order, error)
}

// StockChecker answers whether a SKU can cover the requested quantity.
// A returned error means the answer is unknown (inventory unreachable),
// which is distinct from a definitive false.
type StockChecker interface {
	IsInStock(ctx context.Context, skuCode string, quantity int) (bool, error)
}

// OrderPlacedPublisher hands an order-placed event to the message transport.
// Delivery is at-least-once and asynchronous; PlaceOrder does not depend on
// the outcome.
type OrderPlacedPublisher interface {
	PublishOrderPlaced(ctx context.Context, event domain.OrderPlacedEvent) error
}

type OrderService struct {
	repo      OrderRepository
	stock     StockChecker
	publisher OrderPlacedPublisher
	clock     clock.Clock
	logger    *log.Logger
}

func NewOrderService(repo OrderRepository, stock StockChecker, publisher OrderPlacedPublisher, clk clock.Clock, logger *log.Logger) *OrderService {
	if logger == nil {
		logger = log.Default()
	}
	return &OrderService{
		repo:      repo,
		stock:     stock,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

type UserDetails struct {
	Email     string
	FirstName string
	LastName  string
}

type PlaceOrderInput struct {
	SKUCode     string
	UnitPrice   decimal.Decimal
	Quantity    int
	UserDetails UserDetails
}

type PlaceOrderResult struct {
	Order domain.Order
}

// PlaceOrder checks stock for the requested SKU, persists an Order with a
// freshly generated order number and a total of unit price times quantity,
// and publishes an OrderPlacedEvent keyed by that order number.
//
// A negative stock answer rejects the request with OutOfStockError before
// any write. The publish is fire-and-forget: once the Order is durable the
// call succeeds, and a publish failure is logged, not returned.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderResult, error) {
	if in.SKUCode == "" {
		return PlaceOrderResult{}, domain.ErrSKUCodeRequired
	}
	if in.Quantity <= 0 {
		return PlaceOrderResult{}, domain.ErrInvalidQuantity
	}
	if in.UnitPrice.IsNegative() {
		return PlaceOrderResult{}, domain.ErrInvalidPrice
	}

	inStock, err := s.stock.IsInStock(ctx, in.SKUCode, in.Quantity)
	if err != nil {
		return PlaceOrderResult{}, fmt.Errorf("check stock: %w", err)
	}
	if !inStock {
		return PlaceOrderResult{}, domain.OutOfStockError{SKUCode: in.SKUCode}
	}

	order := domain.Order{
		OrderNumber: uuid.NewString(),
		SKUCode:     in.SKUCode,
		Quantity:    in.Quantity,
		TotalPrice:  in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
		CreatedAt:   s.clock.Now(),
	}

	order, err = s.repo.CreateOrder(ctx, order)
	if err != nil {
		return PlaceOrderResult{}, fmt.Errorf("create order: %w", err)
	}

	event := domain.OrderPlacedEvent{
		OrderNumber: order.OrderNumber,
		Email:       in.UserDetails.Email,
		FirstName:   in.UserDetails.FirstName,
		LastName:    in.UserDetails.LastName,
	}
	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		// The order is already committed; delivery is the transport's problem.
		s.logger.Printf("publish order-placed order_number=%s: %v", order.OrderNumber, err)
	}

	return PlaceOrderResult{Order: order}, nil
}

// GetOrder returns a previously placed order by its storage identifier.
func (s *OrderService) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}
