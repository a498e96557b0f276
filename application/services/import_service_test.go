package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"catalog-backend/domain/catalog"
	apperrors "catalog-backend/pkg/errors"
	"catalog-backend/pkg/observability"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeObjectStore is an in-memory single-bucket object store
type fakeObjectStore struct {
	objects map[string]string
	getErr  error
	copyErr error
}

func newFakeObjectStore(objects map[string]string) *fakeObjectStore {
	return &fakeObjectStore{objects: objects}
}

func (f *fakeObjectStore) Get(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	content, ok := f.objects[key]
	if !ok {
		return nil, fmt.Errorf("no such key %s", key)
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

func (f *fakeObjectStore) Copy(ctx context.Context, bucket, srcKey, dstKey string) error {
	if f.copyErr != nil {
		return f.copyErr
	}
	content, ok := f.objects[srcKey]
	if !ok {
		return fmt.Errorf("no such key %s", srcKey)
	}
	f.objects[dstKey] = content
	return nil
}

func (f *fakeObjectStore) Delete(ctx context.Context, bucket, key string) error {
	delete(f.objects, key)
	return nil
}

// fakeSigner records the key it was asked to sign
type fakeSigner struct {
	signedKey string
	err       error
}

func (f *fakeSigner) PresignPut(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.signedKey = key
	return "https://signed.example/" + key, nil
}

// fakeQueue collects sent messages, optionally failing from the Nth send
type fakeQueue struct {
	messages  []string
	failAfter int // -1 disables failure injection
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{failAfter: -1}
}

func (f *fakeQueue) Send(ctx context.Context, body string) error {
	if f.failAfter >= 0 && len(f.messages) >= f.failAfter {
		return errors.New("queue unavailable")
	}
	f.messages = append(f.messages, body)
	return nil
}

func newTestImportService(store *fakeObjectStore, signer *fakeSigner, queue *fakeQueue) *ImportService {
	return NewImportService(
		store,
		signer,
		queue,
		observability.NewMetrics("test", nil),
		"import-bucket",
		"uploaded/",
		"parsed/",
		time.Hour,
		zap.NewNop(),
	)
}

func s3Event(keys ...string) events.S3Event {
	var records []events.S3EventRecord
	for _, key := range keys {
		records = append(records, events.S3EventRecord{
			S3: events.S3Entity{
				Bucket: events.S3Bucket{Name: "import-bucket"},
				Object: events.S3Object{Key: key},
			},
		})
	}
	return events.S3Event{Records: records}
}

func TestImportService_PresignUpload_MissingName(t *testing.T) {
	// Arrange
	service := newTestImportService(newFakeObjectStore(nil), &fakeSigner{}, newFakeQueue())

	// Act
	_, err := service.PresignUpload(context.Background(), "")

	// Assert
	assert.True(t, apperrors.IsValidation(err))
}

func TestImportService_PresignUpload_SignsStagingKey(t *testing.T) {
	// Arrange
	signer := &fakeSigner{}
	service := newTestImportService(newFakeObjectStore(nil), signer, newFakeQueue())

	// Act
	signedURL, err := service.PresignUpload(context.Background(), "items.csv")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "uploaded/items.csv", signer.signedKey)
	assert.Equal(t, "https://signed.example/uploaded/items.csv", signedURL)
}

func TestImportService_PresignUpload_SignerFailure(t *testing.T) {
	// Arrange
	signer := &fakeSigner{err: errors.New("signing broke")}
	service := newTestImportService(newFakeObjectStore(nil), signer, newFakeQueue())

	// Act
	_, err := service.PresignUpload(context.Background(), "items.csv")

	// Assert
	assert.Error(t, err)
	assert.False(t, apperrors.IsValidation(err))
}

func TestImportService_HandleObjectCreated_DispatchesRowsAndRelocates(t *testing.T) {
	// Arrange
	store := newFakeObjectStore(map[string]string{
		"uploaded/items.csv": "title,description,price\nWidget,small,9.99\nGadget,large,19.99\n",
	})
	queue := newFakeQueue()
	service := newTestImportService(store, &fakeSigner{}, queue)

	// Act
	err := service.HandleObjectCreated(context.Background(), s3Event("uploaded/items.csv"))

	// Assert
	require.NoError(t, err)
	require.Len(t, queue.messages, 2)

	var first catalog.Row
	require.NoError(t, json.Unmarshal([]byte(queue.messages[0]), &first))
	assert.Equal(t, catalog.Row{"title": "Widget", "description": "small", "price": "9.99"}, first)

	_, stillStaged := store.objects["uploaded/items.csv"]
	assert.False(t, stillStaged, "original object must be deleted after a full parse")
	assert.Contains(t, store.objects, "parsed/items.csv")
}

func TestImportService_HandleObjectCreated_SkipsKeysOutsideStagingPrefix(t *testing.T) {
	// Arrange
	store := newFakeObjectStore(map[string]string{
		"uploaded/items.csv": "title,price\nWidget,9.99\n",
	})
	queue := newFakeQueue()
	service := newTestImportService(store, &fakeSigner{}, queue)

	// A foreign key first in the batch must not abort the records after it.
	event := s3Event("parsed/old.csv", "uploaded/items.csv")

	// Act
	err := service.HandleObjectCreated(context.Background(), event)

	// Assert
	require.NoError(t, err)
	assert.Len(t, queue.messages, 1)
	assert.Contains(t, store.objects, "parsed/items.csv")
}

func TestImportService_HandleObjectCreated_DecodesEventKey(t *testing.T) {
	// Arrange
	store := newFakeObjectStore(map[string]string{
		"uploaded/my items.csv": "title,price\nWidget,9.99\n",
	})
	queue := newFakeQueue()
	service := newTestImportService(store, &fakeSigner{}, queue)

	// Act
	err := service.HandleObjectCreated(context.Background(), s3Event("uploaded/my+items.csv"))

	// Assert
	require.NoError(t, err)
	assert.Len(t, queue.messages, 1)
	assert.Contains(t, store.objects, "parsed/my items.csv")
}

func TestImportService_HandleObjectCreated_PublishFailureLeavesObjectStaged(t *testing.T) {
	// Arrange
	store := newFakeObjectStore(map[string]string{
		"uploaded/items.csv": "title,price\nWidget,9.99\nGadget,19.99\n",
	})
	queue := newFakeQueue()
	queue.failAfter = 1
	service := newTestImportService(store, &fakeSigner{}, queue)

	// Act
	err := service.HandleObjectCreated(context.Background(), s3Event("uploaded/items.csv"))

	// Assert
	assert.Error(t, err)
	assert.Len(t, queue.messages, 1)
	assert.Contains(t, store.objects, "uploaded/items.csv")
	assert.NotContains(t, store.objects, "parsed/items.csv")
}

func TestImportService_HandleObjectCreated_CopyFailureKeepsOriginal(t *testing.T) {
	// Arrange
	store := newFakeObjectStore(map[string]string{
		"uploaded/items.csv": "title,price\nWidget,9.99\n",
	})
	store.copyErr = errors.New("copy denied")
	service := newTestImportService(store, &fakeSigner{}, newFakeQueue())

	// Act
	err := service.HandleObjectCreated(context.Background(), s3Event("uploaded/items.csv"))

	// Assert
	assert.Error(t, err)
	assert.Contains(t, store.objects, "uploaded/items.csv")
}

func TestImportService_HandleObjectCreated_EmptyObjectStillRelocated(t *testing.T) {
	// Arrange
	store := newFakeObjectStore(map[string]string{
		"uploaded/empty.csv": "",
	})
	queue := newFakeQueue()
	service := newTestImportService(store, &fakeSigner{}, queue)

	// Act
	err := service.HandleObjectCreated(context.Background(), s3Event("uploaded/empty.csv"))

	// Assert
	require.NoError(t, err)
	assert.Empty(t, queue.messages)
	assert.Contains(t, store.objects, "parsed/empty.csv")
}
