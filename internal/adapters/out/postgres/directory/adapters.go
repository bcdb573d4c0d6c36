package directory

import (
	"context"
	"errors"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/core/ports"

	"gorm.io/gorm"
)

// GormProductCatalog implements ports.ProductCatalog over the products table.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a catalog adapter.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// GetProductByID returns the product, or nil when the id resolves to nothing.
func (c *GormProductCatalog) GetProductByID(ctx context.Context, id kernel.UUID) (*ports.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return &ports.Product{
		ID:        productID,
		Name:      dto.Name,
		UnitPrice: dto.UnitPrice,
		IsAlcohol: dto.IsAlcohol,
	}, nil
}

// GormUserDirectory implements ports.UserDirectory over the users table.
type GormUserDirectory struct {
	db *gorm.DB
}

// NewGormUserDirectory creates a user directory adapter.
func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

// FindByID returns the user, or nil when the id resolves to nothing.
func (d *GormUserDirectory) FindByID(ctx context.Context, id kernel.UUID) (*ports.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return &ports.User{
		ID:          userID,
		AgeVerified: dto.AgeVerified,
	}, nil
}

// GormMerchantDirectory implements ports.MerchantDirectory over the merchants
// table.
type GormMerchantDirectory struct {
	db *gorm.DB
}

// NewGormMerchantDirectory creates a merchant directory adapter.
func NewGormMerchantDirectory(db *gorm.DB) *GormMerchantDirectory {
	return &GormMerchantDirectory{db: db}
}

// GetLocationByID returns the merchant's coordinates, or nil when the merchant
// is unknown or has no stored coordinates.
func (d *GormMerchantDirectory) GetLocationByID(ctx context.Context, id kernel.UUID) (*kernel.GeoPoint, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MerchantDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if dto.Latitude == nil || dto.Longitude == nil {
		return nil, nil
	}

	point, err := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
	if err != nil {
		return nil, err
	}

	return &point, nil
}
