// Package cart provides the shopping-cart aggregate. A cart accumulates
// line items for one session until checkout converts it into an order and
// empties it.
//
// Key business rules:
//   - One line per distinct menu item; repeated adds accumulate quantity
//   - Lines snapshot the item's name and price at add-time
//   - Quantities are strictly positive integers
//   - The cart never outlives checkout: a successful checkout clears it
//
// The aggregate carries no synchronization. Stores that hold carts across
// requests serialize access per session.
package cart
