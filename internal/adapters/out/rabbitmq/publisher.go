// Package rabbitmq publishes order lifecycle events for the kitchen side.
// Events leave strictly after the database commit; delivery is best-effort
// and a lost event never affects the customer-facing outcome.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"foodorder/internal/core/domain/model/order"
)

const (
	OrderPlacedQueue        = "order.placed"
	OrderStatusChangedQueue = "order.status_changed"
)

const publishTimeout = 3 * time.Second

// orderLine is the line contract shared by both event payloads.
type orderLine struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// orderPlacedEvent announces a freshly checked-out order.
type orderPlacedEvent struct {
	EventType  string      `json:"event_type"`
	OrderID    string      `json:"order_id"`
	CustomerID string      `json:"customer_id,omitempty"`
	Lines      []orderLine `json:"lines"`
	TotalCents int64       `json:"total_cents"`
	Status     string      `json:"status"`
	Timestamp  time.Time   `json:"timestamp"`
}

// orderStatusChangedEvent announces an administrator-driven transition.
type orderStatusChangedEvent struct {
	EventType string    `json:"event_type"`
	OrderID   string    `json:"order_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher implements OrderEventPublisher on a RabbitMQ channel.
type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher opens a channel on the given connection and declares the
// order queues so publish never fails due to missing infra.
func NewPublisher(conn *amqp.Connection) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	for _, queue := range []string{OrderPlacedQueue, OrderStatusChangedQueue} {
		if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			return nil, fmt.Errorf("declare %s: %w", queue, err)
		}
	}

	return &Publisher{ch: ch}, nil
}

// Close releases the underlying channel.
func (p *Publisher) Close() error {
	return p.ch.Close()
}

// PublishOrderPlaced emits an event for a freshly placed order.
func (p *Publisher) PublishOrderPlaced(ctx context.Context, o *order.Order) error {
	ev := orderPlacedEvent{
		EventType:  "OrderPlaced",
		OrderID:    o.ID().String(),
		TotalCents: o.Total().Cents(),
		Status:     o.Status().String(),
		Timestamp:  time.Now().UTC(),
	}

	if customerID := o.CustomerID(); customerID != nil {
		ev.CustomerID = customerID.String()
	}

	for _, line := range o.Lines() {
		ev.Lines = append(ev.Lines, orderLine{
			MenuItemID: line.MenuItemID().String(),
			Name:       line.Name(),
			PriceCents: line.Price().Cents(),
			Quantity:   line.Quantity(),
		})
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal OrderPlaced: %w", err)
	}

	return p.publishJSON(ctx, OrderPlacedQueue, body)
}

// PublishOrderStatusChanged emits an event for a status transition.
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, o *order.Order, previous order.Status) error {
	ev := orderStatusChangedEvent{
		EventType: "OrderStatusChanged",
		OrderID:   o.ID().String(),
		From:      previous.String(),
		To:        o.Status().String(),
		Timestamp: time.Now().UTC(),
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal OrderStatusChanged: %w", err)
	}

	return p.publishJSON(ctx, OrderStatusChangedQueue, body)
}

func (p *Publisher) publishJSON(ctx context.Context, routingKey string, body []byte) error {
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		"",         // default exchange
		routingKey, // queue name as routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
