// Package order provides domain entities and business logic for placed
// orders in the food-ordering system. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root holding immutable line snapshots and a total
//   - Line: a checkout-time snapshot of one cart line
//   - Status: a state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders are created only by checkout, with at least one line
//   - The total is computed once at creation from the line snapshots
//   - Status follows pending -> {confirmed, cancelled}, confirmed ->
//     preparing, preparing -> completed; cancelled and completed are terminal
//   - Nothing but the status ever changes after creation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
