package queries

import (
	"context"
	"time"

	"boozebuddies/internal/core/domain/model/delivery"
	"boozebuddies/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler retrieves in-flight deliveries from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for active delivery queries.
// Requires a GORM database connection for query execution.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all active deliveries.
// Returns deliveries that are neither delivered nor cancelled, oldest first.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			driver_id,
			address,
			status,
			created_at
		FROM deliveries
		WHERE status NOT IN (?, ?)
		ORDER BY created_at
	`,
		delivery.StatusDelivered.String(),
		delivery.StatusCancelled.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp      GetActiveDeliveriesQueryResponse
			id        uuid.UUID
			orderID   uuid.UUID
			driverID  *uuid.UUID
			createdAt time.Time
		)

		if err = rows.Scan(&id, &orderID, &driverID, &resp.Address, &resp.Status, &createdAt); err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = deliveryID

		pairedOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = pairedOrderID

		if driverID != nil {
			assignee, idErr := kernel.UUIDFromBytes((*driverID)[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.DriverID = &assignee
		}

		resp.CreatedAt = createdAt
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
