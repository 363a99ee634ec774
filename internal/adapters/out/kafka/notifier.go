// Package kafka publishes order status changes to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the notifier needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// StatusChangedMessage is the wire format of a status change. Keys are order
// ids so every change of one order lands on the same partition in order.
type StatusChangedMessage struct {
	OrderID      string    `json:"orderId"`
	CustomerID   string    `json:"customerId"`
	RestaurantID string    `json:"restaurantId"`
	DriverID     *string   `json:"driverId,omitempty"`
	Status       string    `json:"status"`
	At           time.Time `json:"at"`
}

// StatusNotifier implements ports.StatusNotifier over a Kafka writer.
type StatusNotifier struct {
	writer MessageWriter
}

// NewStatusNotifier wraps a writer. The notifier owns it and closes it in Close.
func NewStatusNotifier(writer MessageWriter) *StatusNotifier {
	return &StatusNotifier{writer: writer}
}

// NewWriter creates a synchronous writer that hashes message keys to partitions.
func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

// NotifyStatusChanged publishes one message for the event.
func (n *StatusNotifier) NotifyStatusChanged(ctx context.Context, event order.StatusChanged) error {
	msg := StatusChangedMessage{
		OrderID:      event.OrderID.String(),
		CustomerID:   event.CustomerID.String(),
		RestaurantID: event.RestaurantID.String(),
		Status:       event.Status.String(),
		At:           event.At.UTC(),
	}
	if event.DriverID != nil {
		driverID := event.DriverID.String()
		msg.DriverID = &driverID
	}

	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal status change of order %s: %w", msg.OrderID, err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.OrderID),
		Value: value,
		Time:  msg.At,
	})
	if err != nil {
		return fmt.Errorf("publish status change of order %s: %w", msg.OrderID, err)
	}
	return nil
}

// Close flushes and closes the writer.
func (n *StatusNotifier) Close() error {
	return n.writer.Close()
}
