// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational tables with indexing for the two
// listing access paths: newest-first history and per-customer history.
type OrderDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID *uuid.UUID     `gorm:"type:uuid;index"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
	TotalCents int64
	Status     int
	CreatedAt  time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one priced line of a persisted order.
// Lines are price snapshots taken at checkout; they never reference back
// into menu_items for current prices. Position preserves cart ordering.
type OrderItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Name       string
	PriceCents int64
	Quantity   int
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional customer attribution.
func fromDomain(aggregate *order.Order) OrderDTO {
	var customerID *uuid.UUID
	if id := aggregate.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	lines := aggregate.Lines()
	items := make([]OrderItemDTO, 0, len(lines))
	for i, line := range lines {
		items = append(items, OrderItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			Position:   i,
			MenuItemID: line.MenuItemID().Bytes(),
			Name:       line.Name(),
			PriceCents: line.Price().Cents(),
			Quantity:   line.Quantity(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: customerID,
		Items:      items,
		TotalCents: aggregate.Total().Cents(),
		Status:     int(aggregate.Status()),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and stored total using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}

		customerID = &cID
	}

	lines := make([]order.Line, 0, len(dto.Items))
	for _, item := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(item.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		price, priceErr := kernel.NewMoneyFromCents(item.PriceCents)
		if priceErr != nil {
			return nil, priceErr
		}

		line, lineErr := order.NewLine(menuItemID, item.Name, price, item.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	total, err := kernel.NewMoneyFromCents(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, lines, total, order.Status(dto.Status), customerID, dto.CreatedAt)
}
