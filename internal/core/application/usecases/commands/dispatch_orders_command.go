package commands

import (
	"errors"

	"boozebuddies/internal/pkg/guard"
)

var (
	ErrDispatchOrdersCommandIsNotConstructed = errors.New(
		"DispatchOrdersCommand must be created via NewDispatchOrdersCommand constructor",
	)
	ErrRadiusIsInvalid = errors.New("dispatch radius must be greater than 0")
)

// DispatchOrdersCommand requests one dispatch pass: take the oldest
// unassigned order and bind it to the nearest available driver within the
// given radius of its merchant.
type DispatchOrdersCommand struct { //nolint:recvcheck //using for validation
	radiusKm float64

	guard guard.ConstructorGuard
}

// NewDispatchOrdersCommand creates a dispatch command for the given radius.
func NewDispatchOrdersCommand(radiusKm float64) (DispatchOrdersCommand, error) {
	cmd := DispatchOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRadiusKm(radiusKm); err != nil {
		return DispatchOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrdersCommandIsNotConstructed)
}

// RadiusKm returns the maximum driver-to-merchant distance for assignment.
func (c DispatchOrdersCommand) RadiusKm() float64 {
	return c.radiusKm
}

func (c *DispatchOrdersCommand) setRadiusKm(radiusKm float64) error {
	if radiusKm <= 0 {
		return ErrRadiusIsInvalid
	}
	c.radiusKm = radiusKm
	return nil
}
