package sqs

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"go.uber.org/zap"
)

// RowQueue implements the RowQueue port on SQS
type RowQueue struct {
	client   *awssqs.Client
	queueURL string
	logger   *zap.Logger
}

// NewRowQueue creates a new RowQueue
func NewRowQueue(client *awssqs.Client, queueURL string, logger *zap.Logger) *RowQueue {
	return &RowQueue{
		client:   client,
		queueURL: queueURL,
		logger:   logger,
	}
}

// Send publishes one message and awaits confirmation
func (q *RowQueue) Send(ctx context.Context, body string) error {
	_, err := q.client.SendMessage(ctx, &awssqs.SendMessageInput{
		QueueUrl:    aws.String(q.queueURL),
		MessageBody: aws.String(body),
	})
	if err != nil {
		q.logger.Error("Failed to send message to SQS", zap.Error(err))
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
