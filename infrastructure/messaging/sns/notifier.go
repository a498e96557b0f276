package sns

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"
)

// Notifier implements the Notifier port on SNS
type Notifier struct {
	client   *awssns.Client
	topicARN string
	logger   *zap.Logger
}

// NewNotifier creates a new Notifier
func NewNotifier(client *awssns.Client, topicARN string, logger *zap.Logger) *Notifier {
	return &Notifier{
		client:   client,
		topicARN: topicARN,
		logger:   logger,
	}
}

// Publish sends one notification to the topic
func (n *Notifier) Publish(ctx context.Context, subject, message string) error {
	_, err := n.client.Publish(ctx, &awssns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		n.logger.Error("Failed to publish notification", zap.Error(err))
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}
