package s3

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// ObjectStore implements the ObjectStore and UploadSigner ports using S3
type ObjectStore struct {
	client    *awss3.Client
	presigner *awss3.PresignClient
	logger    *zap.Logger
}

// NewObjectStore creates a new ObjectStore
func NewObjectStore(client *awss3.Client, logger *zap.Logger) *ObjectStore {
	return &ObjectStore{
		client:    client,
		presigner: awss3.NewPresignClient(client),
		logger:    logger,
	}
}

// Get opens a streaming read of an object's content
func (s *ObjectStore) Get(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error("Failed to get object from S3",
			zap.Error(err),
			zap.String("bucket", bucket),
			zap.String("key", key),
		)
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	return out.Body, nil
}

// Copy duplicates an object within a bucket
func (s *ObjectStore) Copy(ctx context.Context, bucket, srcKey, dstKey string) error {
	_, err := s.client.CopyObject(ctx, &awss3.CopyObjectInput{
		Bucket:     aws.String(bucket),
		CopySource: aws.String(bucket + "/" + srcKey),
		Key:        aws.String(dstKey),
	})
	if err != nil {
		s.logger.Error("Failed to copy object in S3",
			zap.Error(err),
			zap.String("srcKey", srcKey),
			zap.String("dstKey", dstKey),
		)
		return fmt.Errorf("failed to copy object %s: %w", srcKey, err)
	}
	return nil
}

// Delete removes an object
func (s *ObjectStore) Delete(ctx context.Context, bucket, key string) error {
	_, err := s.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error("Failed to delete object from S3",
			zap.Error(err),
			zap.String("key", key),
		)
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

// PresignPut returns a time-limited URL allowing one PUT of the given key
func (s *ObjectStore) PresignPut(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	req, err := s.presigner.PresignPutObject(ctx, &awss3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, awss3.WithPresignExpires(ttl))
	if err != nil {
		s.logger.Error("Failed to presign PUT",
			zap.Error(err),
			zap.String("key", key),
		)
		return "", fmt.Errorf("failed to presign put for %s: %w", key, err)
	}
	return req.URL, nil
}
