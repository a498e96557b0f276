package di

import (
	"context"
	"time"

	"catalog-backend/application/ports"
	"catalog-backend/application/services"
	"catalog-backend/infrastructure/config"
	"catalog-backend/infrastructure/messaging/sns"
	"catalog-backend/infrastructure/messaging/sqs"
	s3store "catalog-backend/infrastructure/objectstore/s3"
	"catalog-backend/infrastructure/persistence/dynamodb"
	"catalog-backend/pkg/auth"
	"catalog-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	ProductRepo    ports.ProductRepository
	StockRepo      ports.StockRepository
	ObjectStore    ports.ObjectStore
	UploadSigner   ports.UploadSigner
	RowQueue       ports.RowQueue
	Notifier       ports.Notifier
	Metrics        *observability.Metrics
	ProductService *services.ProductService
	ImportService  *services.ImportService
	BatchWriter    *services.BatchWriter
	Authorizer     *auth.BasicAuthorizer
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return aws.Config{}, err
	}

	if cfg.EnableTracing {
		observability.InstrumentAWSClients(&awsCfg)
	}

	return awsCfg, nil
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideS3Client creates an S3 client
func ProvideS3Client(awsCfg aws.Config) *awss3.Client {
	return awss3.NewFromConfig(awsCfg)
}

// ProvideSQSClient creates an SQS client
func ProvideSQSClient(awsCfg aws.Config) *awssqs.Client {
	return awssqs.NewFromConfig(awsCfg)
}

// ProvideSNSClient creates an SNS client
func ProvideSNSClient(awsCfg aws.Config) *awssns.Client {
	return awssns.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideProductRepository creates a product repository
func ProvideProductRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ProductRepository {
	return dynamodb.NewProductRepository(client, cfg.ProductsTable, logger)
}

// ProvideStockRepository creates a stock repository
func ProvideStockRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.StockRepository {
	return dynamodb.NewStockRepository(client, cfg.StockTable, logger)
}

// ProvideS3ObjectStore creates the S3-backed object store
func ProvideS3ObjectStore(client *awss3.Client, logger *zap.Logger) *s3store.ObjectStore {
	return s3store.NewObjectStore(client, logger)
}

// ProvideObjectStore exposes the store through its port
func ProvideObjectStore(store *s3store.ObjectStore) ports.ObjectStore {
	return store
}

// ProvideUploadSigner exposes the store's presigner through its port
func ProvideUploadSigner(store *s3store.ObjectStore) ports.UploadSigner {
	return store
}

// ProvideRowQueue creates the row dispatch queue
func ProvideRowQueue(client *awssqs.Client, cfg *config.Config, logger *zap.Logger) ports.RowQueue {
	return sqs.NewRowQueue(client, cfg.QueueURL, logger)
}

// ProvideNotifier creates the notification publisher
func ProvideNotifier(client *awssns.Client, cfg *config.Config, logger *zap.Logger) ports.Notifier {
	return sns.NewNotifier(client, cfg.TopicARN, logger)
}

// ProvideMetrics creates the metrics publisher. Without the metrics flag it
// is a no-op carrier so callers never nil-check.
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config) *observability.Metrics {
	if !cfg.EnableMetrics {
		return observability.NewMetrics(cfg.MetricsNamespace, nil)
	}
	return observability.NewMetrics(cfg.MetricsNamespace, client)
}

// ProvideProductService creates the product service
func ProvideProductService(
	products ports.ProductRepository,
	stock ports.StockRepository,
	logger *zap.Logger,
) *services.ProductService {
	return services.NewProductService(products, stock, logger)
}

// ProvideImportService creates the import service
func ProvideImportService(
	store ports.ObjectStore,
	signer ports.UploadSigner,
	queue ports.RowQueue,
	metrics *observability.Metrics,
	cfg *config.Config,
	logger *zap.Logger,
) *services.ImportService {
	return services.NewImportService(
		store,
		signer,
		queue,
		metrics,
		cfg.BucketName,
		cfg.UploadPrefix,
		cfg.ParsedPrefix,
		time.Duration(cfg.UploadTTL)*time.Second,
		logger,
	)
}

// ProvideBatchWriter creates the batch writer
func ProvideBatchWriter(
	products ports.ProductRepository,
	notifier ports.Notifier,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *services.BatchWriter {
	return services.NewBatchWriter(products, notifier, metrics, logger)
}

// ProvideBasicAuthorizer creates the basic authorizer from the configured
// credential map
func ProvideBasicAuthorizer(cfg *config.Config, logger *zap.Logger) *auth.BasicAuthorizer {
	return auth.NewBasicAuthorizer(cfg.Credentials, logger)
}
