package delivery

import (
	"errors"
	"fmt"
	"time"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/pkg/errs"
	"boozebuddies/internal/pkg/guard"
)

const idNumberRetainedChars = 4

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("delivery must be created via NewDelivery or RestoreDelivery")
)

// TerminalStateError indicates a mutation was attempted on a delivery whose
// status permits no further changes.
type TerminalStateError struct {
	Status Status
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("delivery in terminal status %s cannot be updated", e.Status)
}

func (e *TerminalStateError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// AgeVerification captures the outcome of checking the customer's ID at the
// door. Only the last characters of the ID number are ever retained.
type AgeVerification struct {
	Verified   bool
	IDType     string
	IDLastFour string
	VerifiedAt time.Time
}

// Delivery is the fulfillment record paired one-to-one with an order. It owns
// the driver assignment, pickup and handoff timestamps, the at-the-door age
// verification outcome, and live courier coordinates.
//
// Invariants:
//   - pickupTime is stamped only on the first entry into PickedUp.
//   - deliveredTime is stamped only on the first entry into Delivered.
//   - ID numbers are truncated to at most their last 4 characters.
//   - Terminal deliveries accept no further mutation.
type Delivery struct {
	id                 kernel.UUID
	orderID            kernel.UUID
	driverID           *kernel.UUID
	address            string
	status             Status
	pickupTime         *time.Time
	deliveredTime      *time.Time
	ageVerification    *AgeVerification
	currentLocation    *kernel.GeoPoint
	lastLocationUpdate *time.Time
	cancellationReason string
	createdAt          time.Time
	updatedAt          time.Time
	version            int64

	guard guard.ConstructorGuard
}

// NewDelivery creates a delivery in Pending status for the given order and
// destination address.
func NewDelivery(id kernel.UUID, orderID kernel.UUID, address string, now time.Time) (*Delivery, error) {
	d := &Delivery{
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setAddress(address),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery rehydrates a delivery from persistence.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	driverID *kernel.UUID,
	address string,
	status Status,
	pickupTime *time.Time,
	deliveredTime *time.Time,
	ageVerification *AgeVerification,
	currentLocation *kernel.GeoPoint,
	lastLocationUpdate *time.Time,
	cancellationReason string,
	createdAt time.Time,
	updatedAt time.Time,
	version int64,
) (*Delivery, error) {
	d, err := NewDelivery(id, orderID, address, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	d.driverID = driverID
	d.status = status
	d.pickupTime = pickupTime
	d.deliveredTime = deliveredTime
	d.ageVerification = ageVerification
	d.currentLocation = currentLocation
	d.lastLocationUpdate = lastLocationUpdate
	d.cancellationReason = cancellationReason
	d.updatedAt = updatedAt
	d.version = version
	return d, nil
}

// Validate ensures the delivery was built through NewDelivery or RestoreDelivery.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by identity.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the paired order's identifier.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// DriverID returns the assigned driver's identifier, or nil if unassigned.
func (d *Delivery) DriverID() *kernel.UUID {
	return d.driverID
}

// Address returns the destination address.
func (d *Delivery) Address() string {
	return d.address
}

// Status returns the current fulfillment status.
func (d *Delivery) Status() Status {
	return d.status
}

// PickupTime returns when the driver collected the order, or nil.
func (d *Delivery) PickupTime() *time.Time {
	return d.pickupTime
}

// DeliveredTime returns when the handoff completed, or nil.
func (d *Delivery) DeliveredTime() *time.Time {
	return d.deliveredTime
}

// AgeVerification returns the at-the-door verification outcome, or nil when
// no verification has been recorded.
func (d *Delivery) AgeVerification() *AgeVerification {
	return d.ageVerification
}

// CurrentLocation returns the last reported courier position, or nil.
func (d *Delivery) CurrentLocation() *kernel.GeoPoint {
	return d.currentLocation
}

// LastLocationUpdate returns when the position was last reported, or nil.
func (d *Delivery) LastLocationUpdate() *time.Time {
	return d.lastLocationUpdate
}

// CancellationReason returns why the delivery was cancelled, empty otherwise.
func (d *Delivery) CancellationReason() string {
	return d.cancellationReason
}

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the last-modification timestamp.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// Version returns the optimistic-concurrency version loaded from persistence.
func (d *Delivery) Version() int64 {
	return d.version
}

// IsActive reports whether the delivery still needs driver attention.
// Failed deliveries remain active so dispatch can surface them for retry.
func (d *Delivery) IsActive() bool {
	return d.status != StatusDelivered && d.status != StatusCancelled
}

// Assign binds a driver and moves the delivery to Assigned.
func (d *Delivery) Assign(driverID kernel.UUID, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if d.status.IsTerminal() {
		return &TerminalStateError{Status: d.status}
	}

	d.driverID = &driverID
	d.status = StatusAssigned
	d.updatedAt = now
	return nil
}

// UpdateStatus applies a status change. The first entry into PickedUp stamps
// pickupTime; the first entry into Delivered stamps deliveredTime. Updates on
// a terminal delivery are refused.
func (d *Delivery) UpdateStatus(target Status, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if d.status.IsTerminal() {
		return &TerminalStateError{Status: d.status}
	}

	if target == StatusPickedUp && d.pickupTime == nil {
		d.pickupTime = &now
	}
	if target == StatusDelivered && d.deliveredTime == nil {
		d.deliveredTime = &now
	}

	d.status = target
	d.updatedAt = now
	return nil
}

// VerifyAge records the ID check performed at the door. Only the last 4
// characters of the ID number are retained; shorter inputs are kept whole.
func (d *Delivery) VerifyAge(verified bool, idType string, idNumber string, now time.Time) error {
	if d.status.IsTerminal() {
		return &TerminalStateError{Status: d.status}
	}

	lastFour := idNumber
	if runes := []rune(idNumber); len(runes) > idNumberRetainedChars {
		lastFour = string(runes[len(runes)-idNumberRetainedChars:])
	}

	d.ageVerification = &AgeVerification{
		Verified:   verified,
		IDType:     idType,
		IDLastFour: lastFour,
		VerifiedAt: now,
	}
	d.updatedAt = now
	return nil
}

// UpdateLocation records the courier's current position.
func (d *Delivery) UpdateLocation(point kernel.GeoPoint, now time.Time) error {
	if err := point.Validate(); err != nil {
		return err
	}
	if d.status.IsTerminal() {
		return &TerminalStateError{Status: d.status}
	}

	d.currentLocation = &point
	d.lastLocationUpdate = &now
	d.updatedAt = now
	return nil
}

// Cancel moves the delivery to Cancelled with the given reason.
func (d *Delivery) Cancel(reason string, now time.Time) error {
	if d.status.IsTerminal() {
		return &TerminalStateError{Status: d.status}
	}

	d.status = StatusCancelled
	d.cancellationReason = reason
	d.updatedAt = now
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	d.address = address
	return nil
}
