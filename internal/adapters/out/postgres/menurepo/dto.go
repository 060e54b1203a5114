// Package menurepo provides data transfer objects and mapping functions for menu persistence.
// The catalog is read-only from the core's point of view; Add exists for
// seeding and tests, not for a management surface.
package menurepo

import (
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure for persisting menu items.
type MenuItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null"`
	PriceCents int64     `gorm:"not null"`
	Category   string    `gorm:"type:varchar(255);not null;index"`
	ImageURL   string    `gorm:"type:varchar(1024)"`
}

// TableName specifies the database table name for menu item entities.
// Overrides GORM's default naming convention to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a menu item to its database representation.
func fromDomain(item *menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:         item.ID().Bytes(),
		Name:       item.Name(),
		PriceCents: item.Price().Cents(),
		Category:   item.Category(),
		ImageURL:   item.ImageURL(),
	}
}

// toDomain converts a database DTO to a menu item.
func toDomain(dto MenuItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return menu.RestoreItem(id, dto.Name, price, dto.Category, dto.ImageURL)
}
