package commands

import (
	"errors"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/pkg/guard"
)

var (
	ErrUpdateAgeVerificationCommandIsNotConstructed = errors.New(
		"UpdateAgeVerificationCommand must be created via NewUpdateAgeVerificationCommand constructor",
	)
	ErrIDTypeIsRequired = errors.New("id type is required")
)

// UpdateAgeVerificationCommand records the outcome of the driver checking the
// customer's ID at the door. The full ID number arrives here but only its
// last characters survive into the aggregate.
type UpdateAgeVerificationCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	verified   bool
	idType     string
	idNumber   string

	guard guard.ConstructorGuard
}

// NewUpdateAgeVerificationCommand creates a command to record an age check.
func NewUpdateAgeVerificationCommand(
	deliveryID kernel.UUID,
	verified bool,
	idType string,
	idNumber string,
) (UpdateAgeVerificationCommand, error) {
	cmd := UpdateAgeVerificationCommand{
		verified: verified,
		idNumber: idNumber,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setIDType(idType),
	); err != nil {
		return UpdateAgeVerificationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAgeVerificationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAgeVerificationCommandIsNotConstructed)
}

// DeliveryID returns the target delivery's identifier.
func (c UpdateAgeVerificationCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Verified reports whether the ID check passed.
func (c UpdateAgeVerificationCommand) Verified() bool {
	return c.verified
}

// IDType returns the kind of ID presented.
func (c UpdateAgeVerificationCommand) IDType() string {
	return c.idType
}

// IDNumber returns the presented ID number as submitted.
func (c UpdateAgeVerificationCommand) IDNumber() string {
	return c.idNumber
}

func (c *UpdateAgeVerificationCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateAgeVerificationCommand) setIDType(idType string) error {
	if idType == "" {
		return ErrIDTypeIsRequired
	}
	c.idType = idType
	return nil
}
