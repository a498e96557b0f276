package observability

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Metrics handles application metrics and monitoring
type Metrics struct {
	namespace string
	client    *cloudwatch.Client
}

// NewMetrics creates a new metrics instance
func NewMetrics(namespace string, client *cloudwatch.Client) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
	}
}

// RecordImport records metrics for one parsed import object
func (m *Metrics) RecordImport(ctx context.Context, rows int) {
	if m.client == nil {
		return // Skip if no client configured
	}

	now := time.Now()
	metricData := []types.MetricDatum{
		{
			MetricName: aws.String("ObjectsImported"),
			Value:      aws.Float64(1),
			Unit:       types.StandardUnitCount,
			Timestamp:  aws.Time(now),
		},
		{
			MetricName: aws.String("RowsDispatched"),
			Value:      aws.Float64(float64(rows)),
			Unit:       types.StandardUnitCount,
			Timestamp:  aws.Time(now),
		},
	}

	m.put(ctx, metricData)
}

// RecordBatchWrite records metrics for one consumed queue batch
func (m *Metrics) RecordBatchWrite(ctx context.Context, written, failed int) {
	if m.client == nil {
		return
	}

	now := time.Now()
	metricData := []types.MetricDatum{
		{
			MetricName: aws.String("ProductsWritten"),
			Value:      aws.Float64(float64(written)),
			Unit:       types.StandardUnitCount,
			Timestamp:  aws.Time(now),
		},
		{
			MetricName: aws.String("ProductWriteFailures"),
			Value:      aws.Float64(float64(failed)),
			Unit:       types.StandardUnitCount,
			Timestamp:  aws.Time(now),
		},
	}

	m.put(ctx, metricData)
}

func (m *Metrics) put(ctx context.Context, data []types.MetricDatum) {
	input := &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(m.namespace),
		MetricData: data,
	}

	if _, err := m.client.PutMetricData(ctx, input); err != nil {
		// Log error but don't fail the operation
		fmt.Printf("Failed to send metrics: %v\n", err)
	}
}
