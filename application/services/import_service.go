package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/url"
	"strings"
	"time"

	"catalog-backend/application/ports"
	"catalog-backend/domain/catalog"
	"catalog-backend/pkg/errors"
	"catalog-backend/pkg/observability"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// ImportService issues presigned upload URLs and drives the CSV import
// pipeline: stream the uploaded object, publish one queue message per row,
// then relocate the object out of the staging prefix.
type ImportService struct {
	store        ports.ObjectStore
	signer       ports.UploadSigner
	queue        ports.RowQueue
	metrics      *observability.Metrics
	bucket       string
	uploadPrefix string
	parsedPrefix string
	uploadTTL    time.Duration
	logger       *zap.Logger
}

// NewImportService creates a new import service
func NewImportService(
	store ports.ObjectStore,
	signer ports.UploadSigner,
	queue ports.RowQueue,
	metrics *observability.Metrics,
	bucket, uploadPrefix, parsedPrefix string,
	uploadTTL time.Duration,
	logger *zap.Logger,
) *ImportService {
	return &ImportService{
		store:        store,
		signer:       signer,
		queue:        queue,
		metrics:      metrics,
		bucket:       bucket,
		uploadPrefix: uploadPrefix,
		parsedPrefix: parsedPrefix,
		uploadTTL:    uploadTTL,
		logger:       logger,
	}
}

// PresignUpload returns a time-limited PUT URL for a file under the staging
// prefix. Nothing is written to the store until the client performs the
// upload itself.
func (s *ImportService) PresignUpload(ctx context.Context, fileName string) (string, error) {
	if fileName == "" {
		return "", errors.NewValidationError(`Missing "name" query parameter`)
	}

	key := s.uploadPrefix + fileName
	signedURL, err := s.signer.PresignPut(ctx, s.bucket, key, s.uploadTTL)
	if err != nil {
		return "", errors.Wrap(err, "failed to presign upload")
	}

	s.logger.Info("Issued presigned upload URL",
		zap.String("key", key),
		zap.Duration("ttl", s.uploadTTL),
	)

	return signedURL, nil
}

// HandleObjectCreated processes a batch of object-creation events. A key
// outside the staging prefix skips that record only; a processing failure
// propagates so the runtime redelivers the event.
func (s *ImportService) HandleObjectCreated(ctx context.Context, event events.S3Event) error {
	for _, record := range event.Records {
		key, err := decodeObjectKey(record.S3.Object.Key)
		if err != nil {
			s.logger.Warn("Skipping undecodable object key",
				zap.String("rawKey", record.S3.Object.Key),
				zap.Error(err),
			)
			continue
		}

		if !strings.HasPrefix(key, s.uploadPrefix) {
			s.logger.Info("Skipping object outside staging prefix", zap.String("key", key))
			continue
		}

		if err := s.processObject(ctx, record.S3.Bucket.Name, key); err != nil {
			return err
		}
	}
	return nil
}

// processObject streams one staged object, dispatches its rows, and on full
// success relocates it to the parsed prefix. Any failure leaves the object
// staged for redelivery or manual inspection.
func (s *ImportService) processObject(ctx context.Context, bucket, key string) error {
	body, err := s.store.Get(ctx, bucket, key)
	if err != nil {
		return errors.Wrapf(err, "failed to open object %s", key)
	}
	defer body.Close()

	reader := csv.NewReader(body)
	reader.FieldsPerRecord = -1

	rows := 0
	header, err := reader.Read()
	switch {
	case err == io.EOF:
		// Empty object: the stream completed, relocation still applies.
	case err != nil:
		return errors.Wrapf(err, "failed to read header of %s", key)
	default:
		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return errors.Wrapf(err, "failed to parse row %d of %s", rows+1, key)
			}

			row := catalog.Row{}
			for i, column := range header {
				if i < len(record) {
					row[strings.TrimSpace(column)] = record[i]
				}
			}

			payload, err := json.Marshal(row)
			if err != nil {
				return errors.Wrapf(err, "failed to encode row %d of %s", rows+1, key)
			}

			// Each send is awaited before the next row is read; a failure
			// aborts the rest of the object with no partial relocation.
			if err := s.queue.Send(ctx, string(payload)); err != nil {
				return errors.Wrapf(err, "failed to publish row %d of %s", rows+1, key)
			}
			rows++
		}
	}

	dstKey := s.parsedPrefix + strings.TrimPrefix(key, s.uploadPrefix)
	if err := s.store.Copy(ctx, bucket, key, dstKey); err != nil {
		return errors.Wrapf(err, "failed to copy %s to %s", key, dstKey)
	}
	if err := s.store.Delete(ctx, bucket, key); err != nil {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	s.metrics.RecordImport(ctx, rows)
	s.logger.Info("Imported object",
		zap.String("key", key),
		zap.String("movedTo", dstKey),
		zap.Int("rows", rows),
	)

	return nil
}

// decodeObjectKey reverses the URL encoding S3 applies to keys in event
// notifications. QueryUnescape also maps '+' to space.
func decodeObjectKey(raw string) (string, error) {
	return url.QueryUnescape(raw)
}
