// Package menu provides the catalog side of the domain: the items a customer
// can order. The rest of the core consumes the catalog read-only; carts and
// orders snapshot an item's name and price at the moment it is added and are
// immune to later catalog edits.
package menu
