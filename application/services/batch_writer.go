package services

import (
	"context"
	"encoding/json"
	"fmt"

	"catalog-backend/application/ports"
	"catalog-backend/domain/catalog"
	"catalog-backend/pkg/errors"
	"catalog-backend/pkg/observability"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const notificationSubject = "Product Creation Notification"

// BatchWriter consumes queued row messages, writes one product per message
// and publishes a notification for each created product. Failed items are
// reported individually so the queue redelivers only those.
type BatchWriter struct {
	products ports.ProductRepository
	notifier ports.Notifier
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewBatchWriter creates a new batch writer
func NewBatchWriter(
	products ports.ProductRepository,
	notifier ports.Notifier,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *BatchWriter {
	return &BatchWriter{
		products: products,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// HandleBatch processes one queue batch. A failed message never blocks the
// rest of the batch; its ID is reported back for redelivery.
func (w *BatchWriter) HandleBatch(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	var failures []events.SQSBatchItemFailure
	written := 0

	for _, record := range event.Records {
		if err := w.processMessage(ctx, record.Body); err != nil {
			w.logger.Error("Failed to process row message",
				zap.String("messageID", record.MessageId),
				zap.Error(err),
			)
			failures = append(failures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
			continue
		}
		written++
	}

	w.metrics.RecordBatchWrite(ctx, written, len(failures))

	return events.SQSEventResponse{BatchItemFailures: failures}, nil
}

// processMessage writes one product from a JSON-encoded row. The write is a
// blind overwrite keyed by ID, so redelivery of the same message is
// idempotent.
func (w *BatchWriter) processMessage(ctx context.Context, body string) error {
	var row catalog.Row
	if err := json.Unmarshal([]byte(body), &row); err != nil {
		return errors.NewValidationError("message body is not a JSON row").WithCause(err)
	}

	product, err := row.Product(uuid.NewString)
	if err != nil {
		return err
	}

	if err := w.products.Save(ctx, product); err != nil {
		return errors.Wrapf(err, "failed to save product %s", product.ID)
	}

	message := fmt.Sprintf("Product %s created successfully.", product.ID)
	if err := w.notifier.Publish(ctx, notificationSubject, message); err != nil {
		return errors.Wrapf(err, "failed to notify for product %s", product.ID)
	}

	w.logger.Info("Imported product written",
		zap.String("productID", product.ID),
		zap.String("title", product.Title),
	)

	return nil
}
