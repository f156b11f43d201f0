package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cimillas/ultimate-shop/services/order/internal/app"
	"github.com/cimillas/ultimate-shop/services/order/internal/domain"
)

// OrderPlacer is the minimal interface needed to place an order.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, in app.PlaceOrderInput) (app.PlaceOrderResult, error)
}

// OrderGetter is the minimal interface needed to fetch an order.
type OrderGetter interface {
	GetOrder(ctx context.Context, id string) (domain.Order, error)
}

// HandleCreateOrder returns an HTTP handler for placing orders.
func HandleCreateOrder(svc OrderPlacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req createOrderRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		res, err := svc.PlaceOrder(r.Context(), app.PlaceOrderInput{
			SKUCode:   req.SKUCode,
			UnitPrice: req.Price,
			Quantity:  req.Quantity,
			UserDetails: app.UserDetails{
				Email:     req.UserDetails.Email,
				FirstName: req.UserDetails.FirstName,
				LastName:  req.UserDetails.LastName,
			},
		})
		if err != nil {
			writeOrderError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(newOrderResponse(res.Order))
	}
}

// HandleGetOrder returns an HTTP handler for fetching an order by ID.
func HandleGetOrder(svc OrderGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		id, ok := parseOrderPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}

		order, err := svc.GetOrder(r.Context(), id)
		if err != nil {
			switch err {
			case domain.ErrOrderNotFound:
				writeError(w, http.StatusNotFound, codeOrderNotFound, err.Error())
			case domain.ErrInvalidID:
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(newOrderResponse(order))
	}
}

func writeOrderError(w http.ResponseWriter, err error) {
	var oos domain.OutOfStockError
	switch {
	case errors.As(err, &oos):
		writeError(w, http.StatusConflict, codeOutOfStock, oos.Error())
	case errors.Is(err, domain.ErrSKUCodeRequired):
		writeError(w, http.StatusBadRequest, codeSKUCodeRequired, domain.ErrSKUCodeRequired.Error())
	case errors.Is(err, domain.ErrInvalidQuantity):
		writeError(w, http.StatusBadRequest, codeInvalidQuantity, domain.ErrInvalidQuantity.Error())
	case errors.Is(err, domain.ErrInvalidPrice):
		writeError(w, http.StatusBadRequest, codeInvalidPrice, domain.ErrInvalidPrice.Error())
	case errors.Is(err, domain.ErrInventoryUnavailable):
		writeError(w, http.StatusBadGateway, codeInventoryUnavailable, domain.ErrInventoryUnavailable.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func parseOrderPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 || parts[0] != "orders" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

type createOrderRequest struct {
	SKUCode     string             `json:"sku_code"`
	Price       decimal.Decimal    `json:"price"`
	Quantity    int                `json:"quantity"`
	UserDetails userDetailsRequest `json:"user_details"`
}

type userDetailsRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type orderResponse struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"order_number"`
	SKUCode     string          `json:"sku_code"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	CreatedAt   time.Time       `json:"created_at"`
}

func newOrderResponse(o domain.Order) orderResponse {
	return orderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		SKUCode:     o.SKUCode,
		Quantity:    o.Quantity,
		TotalPrice:  o.TotalPrice,
		CreatedAt:   o.CreatedAt,
	}
}
