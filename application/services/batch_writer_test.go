package services

import (
	"context"
	"fmt"
	"testing"

	"catalog-backend/domain/catalog"
	"catalog-backend/pkg/observability"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memProductRepo is a map-backed product repository
type memProductRepo struct {
	products map[string]catalog.Product
	saves    int
	saveErr  error
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]catalog.Product)}
}

func (r *memProductRepo) Save(ctx context.Context, product catalog.Product) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	if p, ok := r.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *memProductRepo) GetAll(ctx context.Context) ([]catalog.Product, error) {
	var all []catalog.Product
	for _, p := range r.products {
		all = append(all, p)
	}
	return all, nil
}

func (r *memProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

// fakeNotifier records published notifications
type fakeNotifier struct {
	subjects []string
	messages []string
	err      error
}

func (n *fakeNotifier) Publish(ctx context.Context, subject, message string) error {
	if n.err != nil {
		return n.err
	}
	n.subjects = append(n.subjects, subject)
	n.messages = append(n.messages, message)
	return nil
}

func newTestBatchWriter(repo *memProductRepo, notifier *fakeNotifier) *BatchWriter {
	return NewBatchWriter(repo, notifier, observability.NewMetrics("test", nil), zap.NewNop())
}

func sqsEvent(bodies ...string) events.SQSEvent {
	var records []events.SQSMessage
	for i, body := range bodies {
		records = append(records, events.SQSMessage{
			MessageId: fmt.Sprintf("msg-%d", i+1),
			Body:      body,
		})
	}
	return events.SQSEvent{Records: records}
}

func TestBatchWriter_HandleBatch_WritesProductsAndNotifies(t *testing.T) {
	// Arrange
	repo := newMemProductRepo()
	notifier := &fakeNotifier{}
	writer := newTestBatchWriter(repo, notifier)

	event := sqsEvent(
		`{"id":"p1","title":"Widget","description":"small","price":"9.99"}`,
		`{"id":"p2","title":"Gadget","price":"19.99"}`,
	)

	// Act
	response, err := writer.HandleBatch(context.Background(), event)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, response.BatchItemFailures)
	assert.Equal(t, catalog.Product{ID: "p1", Title: "Widget", Description: "small", Price: 9.99}, repo.products["p1"])
	assert.Equal(t, 19.99, repo.products["p2"].Price)
	require.Len(t, notifier.messages, 2)
	assert.Equal(t, "Product Creation Notification", notifier.subjects[0])
	assert.Equal(t, "Product p1 created successfully.", notifier.messages[0])
}

func TestBatchWriter_HandleBatch_ReportsOnlyFailedItems(t *testing.T) {
	// Arrange
	repo := newMemProductRepo()
	notifier := &fakeNotifier{}
	writer := newTestBatchWriter(repo, notifier)

	event := sqsEvent(
		`not json`,
		`{"id":"p2","title":"Gadget","price":"19.99"}`,
	)

	// Act
	response, err := writer.HandleBatch(context.Background(), event)

	// Assert
	require.NoError(t, err)
	require.Len(t, response.BatchItemFailures, 1)
	assert.Equal(t, "msg-1", response.BatchItemFailures[0].ItemIdentifier)
	assert.Contains(t, repo.products, "p2", "a failed item must not block the rest of the batch")
}

func TestBatchWriter_HandleBatch_RejectsRowWithoutTitle(t *testing.T) {
	// Arrange
	repo := newMemProductRepo()
	writer := newTestBatchWriter(repo, &fakeNotifier{})

	// Act
	response, err := writer.HandleBatch(context.Background(), sqsEvent(`{"price":"9.99"}`))

	// Assert
	require.NoError(t, err)
	require.Len(t, response.BatchItemFailures, 1)
	assert.Empty(t, repo.products)
}

func TestBatchWriter_HandleBatch_SaveFailureSkipsNotification(t *testing.T) {
	// Arrange
	repo := newMemProductRepo()
	repo.saveErr = fmt.Errorf("table unavailable")
	notifier := &fakeNotifier{}
	writer := newTestBatchWriter(repo, notifier)

	// Act
	response, err := writer.HandleBatch(context.Background(), sqsEvent(`{"id":"p1","title":"Widget","price":"9.99"}`))

	// Assert
	require.NoError(t, err)
	require.Len(t, response.BatchItemFailures, 1)
	assert.Empty(t, notifier.messages)
}

func TestBatchWriter_HandleBatch_GeneratesIDWhenRowHasNone(t *testing.T) {
	// Arrange
	repo := newMemProductRepo()
	writer := newTestBatchWriter(repo, &fakeNotifier{})

	// Act
	response, err := writer.HandleBatch(context.Background(), sqsEvent(`{"title":"Widget","price":"9.99"}`))

	// Assert
	require.NoError(t, err)
	assert.Empty(t, response.BatchItemFailures)
	require.Len(t, repo.products, 1)
	for id := range repo.products {
		_, parseErr := uuid.Parse(id)
		assert.NoError(t, parseErr)
	}
}

func TestBatchWriter_HandleBatch_RedeliveryOverwrites(t *testing.T) {
	// Arrange
	repo := newMemProductRepo()
	writer := newTestBatchWriter(repo, &fakeNotifier{})
	message := `{"id":"p1","title":"Widget","price":"9.99"}`

	// Act
	_, err := writer.HandleBatch(context.Background(), sqsEvent(message))
	require.NoError(t, err)
	_, err = writer.HandleBatch(context.Background(), sqsEvent(message))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, repo.saves)
	assert.Len(t, repo.products, 1, "redelivery overwrites, it never duplicates")
	assert.Equal(t, "Widget", repo.products["p1"].Title)
}
