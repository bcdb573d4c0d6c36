package services

import (
	"errors"
	"math"

	"boozebuddies/internal/core/domain/model/driver"
	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/core/domain/model/order"
)

// ErrDriverNotFound is returned when no suitable driver is available for
// dispatch: none were provided, none are within the radius, or none have a
// known location.
var ErrDriverNotFound = errors.New("driver not found")

// driverSpeedKmh is the average courier speed assumed by the delivery-time
// heuristic.
const driverSpeedKmh = 30.0

// handoffOverheadMinutes covers pickup and doorstep handoff on top of the
// pure travel time.
const handoffOverheadMinutes = 5

// Candidate pairs an open order with its merchant's coordinates, which live
// outside the order aggregate. A nil MerchantLocation excludes the candidate
// from matching instead of erroring.
type Candidate struct {
	Order            *order.Order
	MerchantLocation *kernel.GeoPoint
}

// Match is an order selected by radius filtering together with its computed
// distance from the query origin.
type Match struct {
	Order      *order.Order
	DistanceKm float64
}

// OrderMatcher is a domain service that filters the pool of assignable orders
// by geographic distance and selects drivers for dispatch. It only filters
// and measures; persisting assignments and delivery-time estimates is the
// caller's job.
type OrderMatcher struct{}

// NewOrderMatcher creates a new OrderMatcher instance.
func NewOrderMatcher() OrderMatcher {
	return OrderMatcher{}
}

// FindWithinRadius returns the candidates whose merchant location lies within
// radiusKm of origin, each paired with its computed distance. The radius
// boundary is inclusive. Candidates without merchant coordinates are skipped.
func (m OrderMatcher) FindWithinRadius(
	candidates []Candidate,
	origin kernel.GeoPoint,
	radiusKm float64,
) ([]Match, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.MerchantLocation == nil {
			continue
		}
		if err := candidate.Order.Validate(); err != nil {
			return nil, err
		}

		dist, err := candidate.MerchantLocation.DistanceKm(origin)
		if err != nil {
			return nil, err
		}
		if dist <= radiusKm {
			matches = append(matches, Match{Order: candidate.Order, DistanceKm: dist})
		}
	}

	return matches, nil
}

// FindNearestDriver selects the available driver closest to origin within
// radiusKm. Drivers without a known location or marked unavailable are
// skipped. Returns ErrDriverNotFound when no driver qualifies; ties go to
// the earliest driver in the slice.
func (m OrderMatcher) FindNearestDriver(
	drivers []*driver.Driver,
	origin kernel.GeoPoint,
	radiusKm float64,
) (*driver.Driver, float64, error) {
	if err := origin.Validate(); err != nil {
		return nil, 0, err
	}

	var (
		best     *driver.Driver
		bestDist = math.MaxFloat64
	)

	for _, d := range drivers {
		if err := d.Validate(); err != nil {
			return nil, 0, err
		}
		if !d.IsAvailable() || d.Location() == nil {
			continue
		}

		dist, err := d.Location().DistanceKm(origin)
		if err != nil {
			return nil, 0, err
		}
		if dist > radiusKm {
			continue
		}
		if dist < bestDist {
			bestDist = dist
			best = d
		}
	}

	if best == nil {
		return nil, 0, ErrDriverNotFound
	}

	return best, bestDist, nil
}

// EstimateDeliveryMinutes converts a distance into the projected minutes
// until handoff: travel time at the assumed courier speed, rounded up, plus
// a fixed handoff overhead.
func EstimateDeliveryMinutes(distanceKm float64) int {
	travel := math.Ceil(distanceKm / driverSpeedKmh * 60)
	return int(travel) + handoffOverheadMinutes
}
