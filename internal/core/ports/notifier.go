package ports

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// StatusNotifier receives a status-changed event after every accepted transition.
// Delivery is fire-and-forget: callers log errors and carry on.
type StatusNotifier interface {
	NotifyStatusChanged(ctx context.Context, event order.StatusChanged) error
}
