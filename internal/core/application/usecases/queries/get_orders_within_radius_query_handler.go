package queries

import (
	"context"
	"database/sql"
	"time"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/core/domain/model/order"
	"boozebuddies/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersWithinRadiusQueryHandler finds assignable orders near an origin.
// The candidate pool comes from a direct SQL join to merchant coordinates;
// distance filtering and the ETA estimate are delegated to the matcher so the
// query returns exactly what dispatch would consider.
type GetOrdersWithinRadiusQueryHandler struct {
	db      *gorm.DB
	matcher services.OrderMatcher
}

// NewGetOrdersWithinRadiusQueryHandler creates a handler for proximity searches.
// Requires a GORM database connection for query execution.
func NewGetOrdersWithinRadiusQueryHandler(db *gorm.DB, matcher services.OrderMatcher) GetOrdersWithinRadiusQueryHandler {
	return GetOrdersWithinRadiusQueryHandler{db: db, matcher: matcher}
}

// Handle executes the proximity search. Orders at merchants without stored
// coordinates never match. Results carry the distance and the estimated
// delivery minutes for each order in range.
func (h GetOrdersWithinRadiusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersWithinRadiusQuery,
) ([]GetOrdersWithinRadiusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.user_id,
			o.merchant_id,
			o.delivery_address,
			o.payment_method,
			o.total,
			o.status,
			o.created_at,
			o.updated_at,
			o.version,
			m.latitude,
			m.longitude
		FROM orders o
		LEFT JOIN merchants m ON m.id = o.merchant_id
		WHERE o.driver_id IS NULL
		  AND o.status IN (?, ?, ?, ?)
		ORDER BY o.created_at
	`,
		order.StatusPending.String(),
		order.StatusConfirmed.String(),
		order.StatusPreparing.String(),
		order.StatusReadyForPickup.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]services.Candidate, 0)

	for rows.Next() {
		var (
			id, userID, merchantID uuid.UUID
			address, method        string
			total                  decimal.Decimal
			statusName             string
			createdAt, updatedAt   time.Time
			version                int64
			lat, lon               sql.NullFloat64
		)

		if err = rows.Scan(
			&id, &userID, &merchantID, &address, &method,
			&total, &statusName, &createdAt, &updatedAt, &version,
			&lat, &lon,
		); err != nil {
			return nil, err
		}

		candidate, candErr := buildCandidate(
			id, userID, merchantID, address, method,
			total, statusName, createdAt, updatedAt, version,
			lat, lon,
		)
		if candErr != nil {
			return nil, candErr
		}
		candidates = append(candidates, candidate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	matches, err := h.matcher.FindWithinRadius(candidates, query.Origin(), query.RadiusKm())
	if err != nil {
		return nil, err
	}

	responses := make([]GetOrdersWithinRadiusQueryResponse, 0, len(matches))
	for _, match := range matches {
		responses = append(responses, GetOrdersWithinRadiusQueryResponse{
			OrderID:          match.Order.ID(),
			MerchantID:       match.Order.MerchantID(),
			Status:           match.Order.Status().String(),
			Total:            match.Order.Total(),
			DistanceKm:       match.DistanceKm,
			EstimatedMinutes: services.EstimateDeliveryMinutes(match.DistanceKm),
		})
	}

	return responses, nil
}

func buildCandidate(
	id, userID, merchantID uuid.UUID,
	address, method string,
	total decimal.Decimal,
	statusName string,
	createdAt, updatedAt time.Time,
	version int64,
	lat, lon sql.NullFloat64,
) (services.Candidate, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return services.Candidate{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return services.Candidate{}, err
	}
	sellerID, err := kernel.UUIDFromBytes(merchantID[:])
	if err != nil {
		return services.Candidate{}, err
	}
	status, err := order.ParseStatus(statusName)
	if err != nil {
		return services.Candidate{}, err
	}

	aggregate, err := order.RestoreOrder(
		orderID, ownerID, sellerID, nil,
		address, method, nil,
		total, status, nil, createdAt, updatedAt, version,
	)
	if err != nil {
		return services.Candidate{}, err
	}

	candidate := services.Candidate{Order: aggregate}
	if lat.Valid && lon.Valid {
		point, pointErr := kernel.NewGeoPoint(lat.Float64, lon.Float64)
		if pointErr != nil {
			return services.Candidate{}, pointErr
		}
		candidate.MerchantLocation = &point
	}

	return candidate, nil
}
