package menu

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item represents a single entry on the menu: something a customer can put
// in their cart. The cart and order layers treat it as read-only; they copy
// the name and price at add-time and never look back, so later price changes
// on the menu do not rewrite history.
//
// Item invariants:
//   - Must have a valid unique identifier
//   - Name and category must be non-empty
//   - Price must be a valid Money value (non-negative by construction)
type Item struct {
	id       kernel.UUID
	name     string
	price    kernel.Money
	category string
	imageURL string

	isConstructed bool
}

// NewItem creates a new menu Item with validation. This is the only way,
// besides RestoreItem, to obtain a valid Item.
func NewItem(id kernel.UUID, name string, price kernel.Money, category, imageURL string) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setCategory(category),
	); err != nil {
		return nil, err
	}

	item.price = price
	item.imageURL = imageURL
	return item, nil
}

// RestoreItem reconstructs an Item from persistence. It applies the same
// validation as NewItem; rows that fail it indicate a corrupted catalog.
func RestoreItem(id kernel.UUID, name string, price kernel.Money, category, imageURL string) (*Item, error) {
	return NewItem(id, name, price, category, imageURL)
}

// Validate ensures the Item was created through a factory function.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the display name of the item.
func (i *Item) Name() string {
	return i.name
}

// Price returns the current unit price of the item.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Category returns the menu section the item belongs to, e.g. "Burgers".
func (i *Item) Category() string {
	return i.category
}

// ImageURL returns the location of the item's image.
func (i *Item) ImageURL() string {
	return i.imageURL
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	i.category = category
	return nil
}
