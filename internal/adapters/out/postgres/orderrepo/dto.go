// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its canonical string form. Version backs optimistic
// locking on updates.
type OrderDTO struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID       `gorm:"type:uuid;not null;index"`
	MerchantID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	DriverID              *uuid.UUID      `gorm:"type:uuid;index"`
	DeliveryAddress       string          `gorm:"type:varchar(512);not null"`
	PaymentMethod         string          `gorm:"type:varchar(255);not null"`
	Total                 decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status                string          `gorm:"type:varchar(32);not null;index"`
	EstimatedDeliveryTime *time.Time
	Items                 []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt             time.Time      `gorm:"not null"`
	UpdatedAt             time.Time      `gorm:"not null"`
	Version               int64          `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line. Lines are written once at order
// creation and never updated afterwards.
type OrderItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LineNo    int             `gorm:"primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   orderID,
			LineNo:    item.LineNo(),
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Subtotal:  item.Subtotal(),
		})
	}

	return OrderDTO{
		ID:                    orderID,
		UserID:                aggregate.UserID().Bytes(),
		MerchantID:            aggregate.MerchantID().Bytes(),
		DriverID:              driverID,
		DeliveryAddress:       aggregate.DeliveryAddress(),
		PaymentMethod:         aggregate.PaymentMethod(),
		Total:                 aggregate.Total(),
		Status:                aggregate.Status().String(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		Items:                 items,
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
		Version:               aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
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

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, userID, merchantID, driverID,
		dto.DeliveryAddress, dto.PaymentMethod, items,
		dto.Total, status, dto.EstimatedDeliveryTime,
		dto.CreatedAt, dto.UpdatedAt, dto.Version,
	)
}

// itemToDomain converts an order line DTO to its domain entity using
// RestoreItem.
func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(dto.LineNo, productID, dto.Name, dto.Quantity, dto.UnitPrice, dto.Subtotal)
}
