package http

import (
	"time"

	"boozebuddies/internal/core/application/usecases/queries"
	"boozebuddies/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderRequest is the body of POST /api/v1/orders.
type NewOrderRequest struct {
	UserID          string                `json:"user_id"`
	MerchantID      string                `json:"merchant_id"`
	DeliveryAddress string                `json:"delivery_address"`
	PaymentMethod   string                `json:"payment_method"`
	Items           []NewOrderItemRequest `json:"items"`
	Total           decimal.Decimal       `json:"total"`
}

// NewOrderItemRequest is one line of an incoming order.
type NewOrderItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// AssignDriverRequest is the body of the manual driver assignment endpoint.
type AssignDriverRequest struct {
	DriverID string `json:"driver_id"`
}

// StatusChangeRequest carries the requested status for order and delivery
// status endpoints.
type StatusChangeRequest struct {
	Status string `json:"status"`
}

// AgeVerificationRequest is the body of the age-verification endpoint. The
// full ID number arrives here; only its last characters are stored.
type AgeVerificationRequest struct {
	Verified bool   `json:"verified"`
	IDType   string `json:"id_type"`
	IDNumber string `json:"id_number"`
}

// LocationRequest is the body of the courier location ping endpoint.
type LocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CancelDeliveryRequest is the body of the delivery cancellation endpoint.
type CancelDeliveryRequest struct {
	Reason string `json:"reason"`
}

// OrderItemResponse is one stamped order line.
type OrderItemResponse struct {
	LineNo    int             `json:"line_no"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse is the JSON rendering of an order aggregate.
type OrderResponse struct {
	ID                    string              `json:"id"`
	UserID                string              `json:"user_id"`
	MerchantID            string              `json:"merchant_id"`
	DriverID              *string             `json:"driver_id,omitempty"`
	DeliveryAddress       string              `json:"delivery_address"`
	PaymentMethod         string              `json:"payment_method"`
	Status                string              `json:"status"`
	Total                 decimal.Decimal     `json:"total"`
	EstimatedDeliveryTime *time.Time          `json:"estimated_delivery_time,omitempty"`
	Items                 []OrderItemResponse `json:"items"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

// NearbyOrderResponse is one row of the proximity search.
type NearbyOrderResponse struct {
	OrderID          string          `json:"order_id"`
	MerchantID       string          `json:"merchant_id"`
	Status           string          `json:"status"`
	Total            decimal.Decimal `json:"total"`
	DistanceKm       float64         `json:"distance_km"`
	EstimatedMinutes int             `json:"estimated_minutes"`
}

// ActiveDeliveryResponse is one row of the active deliveries listing.
type ActiveDeliveryResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	DriverID  *string   `json:"driver_id,omitempty"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// RevenueResponse is the aggregated revenue for a period.
type RevenueResponse struct {
	Total decimal.Decimal `json:"total"`
	From  time.Time       `json:"from"`
	To    time.Time       `json:"to"`
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemResponse{
			LineNo:    item.LineNo(),
			ProductID: item.ProductID().String(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Subtotal:  item.Subtotal(),
		})
	}

	resp := OrderResponse{
		ID:                    aggregate.ID().String(),
		UserID:                aggregate.UserID().String(),
		MerchantID:            aggregate.MerchantID().String(),
		DeliveryAddress:       aggregate.DeliveryAddress(),
		PaymentMethod:         aggregate.PaymentMethod(),
		Status:                aggregate.Status().String(),
		Total:                 aggregate.Total(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		Items:                 items,
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
	}

	if id := aggregate.DriverID(); id != nil {
		s := id.String()
		resp.DriverID = &s
	}

	return resp
}

func nearbyToResponse(rows []queries.GetOrdersWithinRadiusQueryResponse) []NearbyOrderResponse {
	out := make([]NearbyOrderResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, NearbyOrderResponse{
			OrderID:          row.OrderID.String(),
			MerchantID:       row.MerchantID.String(),
			Status:           row.Status,
			Total:            row.Total,
			DistanceKm:       row.DistanceKm,
			EstimatedMinutes: row.EstimatedMinutes,
		})
	}
	return out
}

func activeDeliveriesToResponse(rows []queries.GetActiveDeliveriesQueryResponse) []ActiveDeliveryResponse {
	out := make([]ActiveDeliveryResponse, 0, len(rows))
	for _, row := range rows {
		resp := ActiveDeliveryResponse{
			ID:        row.ID.String(),
			OrderID:   row.OrderID.String(),
			Address:   row.Address,
			Status:    row.Status,
			CreatedAt: row.CreatedAt,
		}
		if row.DriverID != nil {
			s := row.DriverID.String()
			resp.DriverID = &s
		}
		out = append(out, resp)
	}
	return out
}
