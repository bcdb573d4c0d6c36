// Package directory provides gorm-backed read adapters for the reference data
// the order lifecycle consults: the product catalog, the user directory, and
// merchant coordinates. These tables are owned by other parts of the platform;
// this engine only reads them.
package directory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the catalog row for a sellable item.
type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsAlcohol bool            `gorm:"not null"`
}

// TableName specifies the database table name for catalog rows.
func (ProductDTO) TableName() string {
	return "products"
}

// UserDTO is the directory row for a customer.
type UserDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	AgeVerified bool      `gorm:"not null"`
}

// TableName specifies the database table name for user rows.
func (UserDTO) TableName() string {
	return "users"
}

// MerchantDTO is the directory row for a merchant. Coordinates are nullable;
// merchants without them are simply invisible to geographic matching.
type MerchantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Latitude  *float64
	Longitude *float64
}

// TableName specifies the database table name for merchant rows.
func (MerchantDTO) TableName() string {
	return "merchants"
}
