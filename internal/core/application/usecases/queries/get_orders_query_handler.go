package queries

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/identity"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves placed orders from the database.
// Applies the actor scope before building the SQL so customer queries never
// even select other customers' rows.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve orders, newest first.
// A guest actor gets identity.ErrUnauthorized; an authenticated non-admin
// actor is restricted to orders carrying their own customer id.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if actor.IsGuest() {
		return nil, identity.ErrUnauthorized
	}

	headers, err := h.selectOrders(ctx, actor)
	if err != nil {
		return nil, err
	}

	if len(headers) == 0 {
		return headers, nil
	}

	if err = h.attachLines(ctx, headers); err != nil {
		return nil, err
	}

	return headers, nil
}

func (h GetOrdersQueryHandler) selectOrders(
	ctx context.Context,
	actor identity.Identity,
) ([]GetOrdersQueryResponse, error) {
	querySQL := `
		SELECT
			id,
			customer_id,
			total_cents,
			status,
			created_at
		FROM orders
		ORDER BY created_at DESC
	`
	args := make([]any, 0, 1)

	if !actor.IsAdmin() {
		querySQL = `
			SELECT
				id,
				customer_id,
				total_cents,
				status,
				created_at
			FROM orders
			WHERE customer_id = ?
			ORDER BY created_at DESC
		`
		args = append(args, actor.UserID().Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(querySQL, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)

	for rows.Next() {
		var orderResp GetOrdersQueryResponse
		var id uuid.UUID
		var customerID uuid.NullUUID
		var totalCents int64
		var status int
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&customerID,
			&totalCents,
			&status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		if customerID.Valid {
			restored, custErr := kernel.UUIDFromBytes(customerID.UUID[:])
			if custErr != nil {
				return nil, custErr
			}
			orderResp.CustomerID = &restored
		}

		total, totalErr := kernel.NewMoneyFromCents(totalCents)
		if totalErr != nil {
			return nil, totalErr
		}
		orderResp.Total = total
		orderResp.Status = order.Status(status).String()
		orderResp.CreatedAt = createdAt
		orderResp.Lines = make([]GetOrdersQueryLine, 0)

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetOrdersQueryHandler) attachLines(
	ctx context.Context,
	orders []GetOrdersQueryResponse,
) error {
	orderIDs := make([]uuid.UUID, 0, len(orders))
	byID := make(map[uuid.UUID]int, len(orders))

	for i, orderResp := range orders {
		orderIDs = append(orderIDs, orderResp.ID.Bytes())
		byID[orderResp.ID.Bytes()] = i
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_item_id,
			name,
			price_cents,
			quantity
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var line GetOrdersQueryLine
		var orderID, menuItemID uuid.UUID
		var priceCents int64

		err = rows.Scan(
			&orderID,
			&menuItemID,
			&line.Name,
			&priceCents,
			&line.Quantity,
		)
		if err != nil {
			return err
		}

		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return idErr
		}
		line.MenuItemID = itemID

		price, priceErr := kernel.NewMoneyFromCents(priceCents)
		if priceErr != nil {
			return priceErr
		}
		line.Price = price

		idx, ok := byID[orderID]
		if !ok {
			continue
		}
		orders[idx].Lines = append(orders[idx].Lines, line)
	}

	return rows.Err()
}
