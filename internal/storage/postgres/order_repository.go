package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cimillas/ultimate-shop/services/order/internal/domain"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// CreateOrder inserts the order and returns it with the store-assigned ID.
// The write is committed when this returns.
func (r *OrderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	const stmt = `
INSERT INTO orders (order_number, sku_code, quantity, total_price, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

	err := r.pool.QueryRow(ctx, stmt,
		order.OrderNumber, order.SKUCode, order.Quantity, order.TotalPrice, order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Order{}, domain.ErrDuplicateOrderNumber
		}
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id string) (domain.Order, error) {
	const query = `
SELECT id, order_number, sku_code, quantity, total_price, created_at
FROM orders
WHERE id = $1`

	var o domain.Order
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&o.ID, &o.OrderNumber, &o.SKUCode, &o.Quantity, &o.TotalPrice, &o.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Order{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Order{}, domain.ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isInvalidUUID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}
