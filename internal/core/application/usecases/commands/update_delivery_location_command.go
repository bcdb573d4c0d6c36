package commands

import (
	"errors"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/pkg/guard"
)

var ErrUpdateDeliveryLocationCommandIsNotConstructed = errors.New(
	"UpdateDeliveryLocationCommand must be created via NewUpdateDeliveryLocationCommand constructor",
)

// UpdateDeliveryLocationCommand carries a courier location ping. Coordinate
// range validation happens here, at construction, so handlers only ever see
// valid points.
type UpdateDeliveryLocationCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	location   kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryLocationCommand creates a command from raw coordinates.
func NewUpdateDeliveryLocationCommand(deliveryID kernel.UUID, lat, lon float64) (UpdateDeliveryLocationCommand, error) {
	point, err := kernel.NewGeoPoint(lat, lon)
	if err != nil {
		return UpdateDeliveryLocationCommand{}, err
	}

	cmd := UpdateDeliveryLocationCommand{
		location: point,
		guard:    guard.NewConstructorGuard(),
	}

	if err = cmd.setDeliveryID(deliveryID); err != nil {
		return UpdateDeliveryLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryLocationCommandIsNotConstructed)
}

// DeliveryID returns the target delivery's identifier.
func (c UpdateDeliveryLocationCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Location returns the reported position.
func (c UpdateDeliveryLocationCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *UpdateDeliveryLocationCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}
