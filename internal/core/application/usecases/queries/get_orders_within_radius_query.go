// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrdersWithinRadiusQueryIsNotConstructed = errors.New(
		"GetOrdersWithinRadiusQuery must be created via NewGetOrdersWithinRadiusQuery constructor",
	)
	ErrSearchRadiusIsInvalid = errors.New("search radius must be greater than 0")
)

// GetOrdersWithinRadiusQuery retrieves unassigned orders whose merchant lies
// within a radius of the given origin. Used by dispatchers scouting work near
// a driver's position.
type GetOrdersWithinRadiusQuery struct { //nolint:recvcheck //using for validation
	origin   kernel.GeoPoint
	radiusKm float64

	guard guard.ConstructorGuard
}

// NewGetOrdersWithinRadiusQuery creates the query from raw coordinates and a
// radius in kilometers. Coordinate range validation happens here.
func NewGetOrdersWithinRadiusQuery(lat, lon, radiusKm float64) (GetOrdersWithinRadiusQuery, error) {
	origin, err := kernel.NewGeoPoint(lat, lon)
	if err != nil {
		return GetOrdersWithinRadiusQuery{}, err
	}

	q := GetOrdersWithinRadiusQuery{
		origin: origin,
		guard:  guard.NewConstructorGuard(),
	}

	if err = q.setRadiusKm(radiusKm); err != nil {
		return GetOrdersWithinRadiusQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersWithinRadiusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersWithinRadiusQueryIsNotConstructed)
}

// Origin returns the center of the search circle.
func (q GetOrdersWithinRadiusQuery) Origin() kernel.GeoPoint {
	return q.origin
}

// RadiusKm returns the search radius in kilometers.
func (q GetOrdersWithinRadiusQuery) RadiusKm() float64 {
	return q.radiusKm
}

func (q *GetOrdersWithinRadiusQuery) setRadiusKm(radiusKm float64) error {
	if radiusKm <= 0 {
		return ErrSearchRadiusIsInvalid
	}
	q.radiusKm = radiusKm
	return nil
}

// GetOrdersWithinRadiusQueryResponse is one order in range, annotated with its
// distance from the origin and a delivery time estimate.
type GetOrdersWithinRadiusQueryResponse struct {
	OrderID          kernel.UUID
	MerchantID       kernel.UUID
	Status           string
	Total            decimal.Decimal
	DistanceKm       float64
	EstimatedMinutes int
}
