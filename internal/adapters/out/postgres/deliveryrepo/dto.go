// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence.
package deliveryrepo

import (
	"time"

	"boozebuddies/internal/core/domain/model/delivery"
	"boozebuddies/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. The age verification block and the courier position are flat
// nullable columns; only the last characters of the presented ID are ever
// stored.
type DeliveryDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	DriverID           *uuid.UUID `gorm:"type:uuid;index"`
	Address            string     `gorm:"type:varchar(512);not null"`
	Status             string     `gorm:"type:varchar(32);not null;index"`
	PickupTime         *time.Time
	DeliveredTime      *time.Time
	AgeVerified        *bool
	AgeIDType          *string `gorm:"type:varchar(64)"`
	AgeIDLastFour      *string `gorm:"type:varchar(8)"`
	AgeVerifiedAt      *time.Time
	Latitude           *float64
	Longitude          *float64
	LastLocationUpdate *time.Time
	CancellationReason string    `gorm:"type:varchar(512)"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
	Version            int64     `gorm:"not null"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		ID:                 aggregate.ID().Bytes(),
		OrderID:            aggregate.OrderID().Bytes(),
		Address:            aggregate.Address(),
		Status:             aggregate.Status().String(),
		PickupTime:         aggregate.PickupTime(),
		DeliveredTime:      aggregate.DeliveredTime(),
		LastLocationUpdate: aggregate.LastLocationUpdate(),
		CancellationReason: aggregate.CancellationReason(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		Version:            aggregate.Version(),
	}

	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		dto.DriverID = &raw
	}

	if verification := aggregate.AgeVerification(); verification != nil {
		verified := verification.Verified
		idType := verification.IDType
		lastFour := verification.IDLastFour
		verifiedAt := verification.VerifiedAt
		dto.AgeVerified = &verified
		dto.AgeIDType = &idType
		dto.AgeIDLastFour = &lastFour
		dto.AgeVerifiedAt = &verifiedAt
	}

	if point := aggregate.CurrentLocation(); point != nil {
		lat := point.Latitude()
		lon := point.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lon
	}

	return dto
}

// toDomain converts a database DTO to a delivery domain aggregate using
// RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var verification *delivery.AgeVerification
	if dto.AgeVerified != nil && dto.AgeIDType != nil && dto.AgeIDLastFour != nil && dto.AgeVerifiedAt != nil {
		verification = &delivery.AgeVerification{
			Verified:   *dto.AgeVerified,
			IDType:     *dto.AgeIDType,
			IDLastFour: *dto.AgeIDLastFour,
			VerifiedAt: *dto.AgeVerifiedAt,
		}
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	return delivery.RestoreDelivery(
		id, orderID, driverID,
		dto.Address, status,
		dto.PickupTime, dto.DeliveredTime,
		verification, location, dto.LastLocationUpdate,
		dto.CancellationReason,
		dto.CreatedAt, dto.UpdatedAt, dto.Version,
	)
}
