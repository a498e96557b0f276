package dynamodb

import (
	"context"
	"fmt"

	"catalog-backend/application/ports"
	"catalog-backend/domain/catalog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// StockRepository implements the StockRepository interface using DynamoDB
type StockRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewStockRepository creates a new StockRepository
func NewStockRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.StockRepository {
	return &StockRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// stockItem represents the DynamoDB item structure for a stock row
type stockItem struct {
	ProductID string `dynamodbav:"product_id"`
	Count     int    `dynamodbav:"count"`
}

// Save persists a stock row
func (r *StockRepository) Save(ctx context.Context, stock catalog.Stock) error {
	av, err := attributevalue.MarshalMap(stockItem{
		ProductID: stock.ProductID,
		Count:     stock.Count,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal stock: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to save stock to DynamoDB",
			zap.Error(err),
			zap.String("productID", stock.ProductID),
		)
		return fmt.Errorf("failed to save stock: %w", err)
	}

	return nil
}

// GetByProductID retrieves the stock row for a product, (nil, nil) when absent
func (r *StockRepository) GetByProductID(ctx context.Context, productID string) (*catalog.Stock, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: productID},
		},
	}

	out, err := r.client.GetItem(ctx, input)
	if err != nil {
		r.logger.Error("Failed to get stock from DynamoDB",
			zap.Error(err),
			zap.String("productID", productID),
		)
		return nil, fmt.Errorf("failed to get stock: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var item stockItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stock: %w", err)
	}

	return &catalog.Stock{ProductID: item.ProductID, Count: item.Count}, nil
}

// GetAll scans every stock row into a productID -> count map
func (r *StockRepository) GetAll(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			r.logger.Error("Failed to scan stock", zap.Error(err))
			return nil, fmt.Errorf("failed to scan stock: %w", err)
		}

		var items []stockItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stock: %w", err)
		}
		for _, item := range items {
			counts[item.ProductID] = item.Count
		}

		lastKey = out.LastEvaluatedKey
		if len(lastKey) == 0 {
			break
		}
	}

	return counts, nil
}

// Delete removes the stock row for a product, a no-op when absent
func (r *StockRepository) Delete(ctx context.Context, productID string) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: productID},
		},
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		r.logger.Error("Failed to delete stock from DynamoDB",
			zap.Error(err),
			zap.String("productID", productID),
		)
		return fmt.Errorf("failed to delete stock: %w", err)
	}

	return nil
}
