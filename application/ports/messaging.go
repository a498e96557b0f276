package ports

import "context"

// RowQueue transports imported rows from the parser to the batch writer.
// Delivery is at-least-once and may reorder across batches.
type RowQueue interface {
	// Send publishes one row message and awaits confirmation
	Send(ctx context.Context, body string) error
}

// Notifier publishes human-readable notifications about created products
type Notifier interface {
	Publish(ctx context.Context, subject, message string) error
}
