// Package paymentrepo provides data transfer objects and mapping functions
// for the append-only payment ledger.
package paymentrepo

import (
	"time"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents one immutable ledger row.
type PaymentDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Method       string          `gorm:"type:varchar(255);not null"`
	Status       string          `gorm:"type:varchar(32);not null;index"`
	RefundReason string          `gorm:"type:varchar(512)"`
	CreatedAt    time.Time       `gorm:"not null;index"`
}

// TableName specifies the database table name for ledger rows.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain aggregate to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:           aggregate.ID().Bytes(),
		OrderID:      aggregate.OrderID().Bytes(),
		UserID:       aggregate.UserID().Bytes(),
		Amount:       aggregate.Amount(),
		Method:       aggregate.Method(),
		Status:       aggregate.Status().String(),
		RefundReason: aggregate.RefundReason(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a payment domain aggregate using
// RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := payment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id, orderID, userID,
		dto.Amount, dto.Method, status, dto.RefundReason, dto.CreatedAt,
	)
}
