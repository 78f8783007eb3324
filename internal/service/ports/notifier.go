package ports

import "context"

// NotificationDispatcher hands a notification to the delivery layer.
// Enqueue is fire-and-forget: the ledger state that triggered it is
// already durable and must never be rolled back on delivery failure.
type NotificationDispatcher interface {
	Enqueue(ctx context.Context, recipientID, kind string, payload map[string]any)
}
