// Package driver models the couriers that fulfill deliveries. Dispatch only
// needs identity, availability, and a last known position; licensing and
// vehicle details live outside this engine.
package driver

import (
	"errors"
	"time"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/pkg/errs"
	"boozebuddies/internal/pkg/guard"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("driver must be created via NewDriver or RestoreDriver")

// Driver is a courier eligible for delivery assignment. A driver without a
// known location is excluded from distance-based dispatch rather than erroring.
type Driver struct {
	id        kernel.UUID
	name      string
	location  *kernel.GeoPoint
	available bool
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewDriver creates an available driver with no known location.
func NewDriver(id kernel.UUID, name string, now time.Time) (*Driver, error) {
	d := &Driver{
		available: true,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver rehydrates a driver from persistence.
func RestoreDriver(
	id kernel.UUID,
	name string,
	location *kernel.GeoPoint,
	available bool,
	updatedAt time.Time,
) (*Driver, error) {
	d, err := NewDriver(id, name, updatedAt)
	if err != nil {
		return nil, err
	}

	d.location = location
	d.available = available
	return d, nil
}

// Validate ensures the driver was built through NewDriver or RestoreDriver.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Location returns the last known position, or nil when never reported.
func (d *Driver) Location() *kernel.GeoPoint {
	return d.location
}

// IsAvailable reports whether the driver can take an assignment.
func (d *Driver) IsAvailable() bool {
	return d.available
}

// UpdatedAt returns the last-modification timestamp.
func (d *Driver) UpdatedAt() time.Time {
	return d.updatedAt
}

// UpdateLocation records the driver's current position.
func (d *Driver) UpdateLocation(point kernel.GeoPoint, now time.Time) error {
	if err := point.Validate(); err != nil {
		return err
	}

	d.location = &point
	d.updatedAt = now
	return nil
}

// SetAvailability toggles whether dispatch may assign this driver.
func (d *Driver) SetAvailability(available bool, now time.Time) {
	d.available = available
	d.updatedAt = now
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("driver name")
	}
	d.name = name
	return nil
}
