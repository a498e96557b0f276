package dynamodb

import (
	"context"
	"fmt"

	"catalog-backend/application/ports"
	"catalog-backend/domain/catalog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ProductRepository implements the ProductRepository interface using DynamoDB
type ProductRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) ports.ProductRepository {
	return &ProductRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// productItem represents the DynamoDB item structure for a product
type productItem struct {
	ID          string  `dynamodbav:"id"`
	Title       string  `dynamodbav:"title"`
	Description string  `dynamodbav:"description"`
	Price       float64 `dynamodbav:"price"`
}

func (i productItem) toDomain() catalog.Product {
	return catalog.Product{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Price:       i.Price,
	}
}

// Save persists a product. PutItem overwrites any existing item with the
// same id, which keeps redelivered import messages idempotent.
func (r *ProductRepository) Save(ctx context.Context, product catalog.Product) error {
	item := productItem{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price,
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to save product to DynamoDB",
			zap.Error(err),
			zap.String("productID", product.ID),
		)
		return fmt.Errorf("failed to save product: %w", err)
	}

	return nil
}

// GetByID retrieves a product by its id, (nil, nil) when absent
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	}

	out, err := r.client.GetItem(ctx, input)
	if err != nil {
		r.logger.Error("Failed to get product from DynamoDB",
			zap.Error(err),
			zap.String("productID", id),
		)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var item productItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}

	product := item.toDomain()
	return &product, nil
}

// GetAll scans the whole table, following pagination
func (r *ProductRepository) GetAll(ctx context.Context) ([]catalog.Product, error) {
	proj := expression.NamesList(
		expression.Name("id"),
		expression.Name("title"),
		expression.Name("description"),
		expression.Name("price"),
	)
	expr, err := expression.NewBuilder().WithProjection(proj).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build scan expression: %w", err)
	}

	var products []catalog.Product
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:                aws.String(r.tableName),
			ProjectionExpression:     expr.Projection(),
			ExpressionAttributeNames: expr.Names(),
			ExclusiveStartKey:        lastKey,
		})
		if err != nil {
			r.logger.Error("Failed to scan products", zap.Error(err))
			return nil, fmt.Errorf("failed to scan products: %w", err)
		}

		var items []productItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal products: %w", err)
		}
		for _, item := range items {
			products = append(products, item.toDomain())
		}

		lastKey = out.LastEvaluatedKey
		if len(lastKey) == 0 {
			break
		}
	}

	return products, nil
}

// Delete removes a product, a no-op for absent ids
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		r.logger.Error("Failed to delete product from DynamoDB",
			zap.Error(err),
			zap.String("productID", id),
		)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
