package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cakeshop/cart-service/internal/cart"
	"github.com/cakeshop/cart-service/internal/domain/model"
	"github.com/cakeshop/cart-service/internal/repository"
)

// failingCartsRepo simulates a durable store that is down.
type failingCartsRepo struct{}

func (f *failingCartsRepo) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func (f *failingCartsRepo) Save(context.Context, string, []byte) error {
	return errors.New("connection refused")
}

func (f *failingCartsRepo) Delete(context.Context, string) error {
	return errors.New("connection refused")
}

// recordingCartsRepo tracks calls on top of the in-memory repo.
type recordingCartsRepo struct {
	*repository.InMemoryCartsRepository
	saves   int
	deletes int
}

func newRecordingCartsRepo() *recordingCartsRepo {
	return &recordingCartsRepo{InMemoryCartsRepository: repository.NewInMemoryCartsRepository()}
}

func (r *recordingCartsRepo) Save(ctx context.Context, sessionID string, state []byte) error {
	r.saves++
	return r.InMemoryCartsRepository.Save(ctx, sessionID, state)
}

func (r *recordingCartsRepo) Delete(ctx context.Context, sessionID string) error {
	r.deletes++
	return r.InMemoryCartsRepository.Delete(ctx, sessionID)
}

func cakeItem(productID int64, qty int) model.CartLineItem {
	return model.CartLineItem{
		Product:   model.Cake{ID: productID, Name: "Cake", Price: "500"},
		Quantity:  qty,
		Weight:    "1kg",
		Flavor:    "vanilla",
		UnitPrice: model.ParsePrice("500"),
	}
}

func TestCartService_SnapshotEmptySession(t *testing.T) {
	svc := NewCartService(repository.NewInMemoryCartsRepository())
	defer svc.Stop()

	got := svc.Snapshot(context.Background(), "session-1")

	assert.Empty(t, got.Items)
	assert.True(t, got.Total.IsZero())
	assert.Equal(t, 0, got.ItemCount)
}

func TestCartService_DispatchPersistsState(t *testing.T) {
	ctx := context.Background()
	repo := newRecordingCartsRepo()
	svc := NewCartService(repo)
	defer svc.Stop()

	got := svc.Dispatch(ctx, "session-1", cart.AddItem{Item: cakeItem(1, 2)})
	require.Len(t, got.Items, 1)
	assert.Equal(t, 1, repo.saves)

	// A fresh service over the same repo restores the state from the slot.
	svc2 := NewCartService(repo)
	defer svc2.Stop()

	restored := svc2.Snapshot(ctx, "session-1")
	require.Len(t, restored.Items, 1)
	assert.Equal(t, 2, restored.ItemCount)
	assert.True(t, got.Total.Equal(restored.Total))
}

func TestCartService_ClearDeletesSlot(t *testing.T) {
	ctx := context.Background()
	repo := newRecordingCartsRepo()
	svc := NewCartService(repo)
	defer svc.Stop()

	svc.Dispatch(ctx, "session-1", cart.AddItem{Item: cakeItem(1, 2)})
	got := svc.Dispatch(ctx, "session-1", cart.Clear{})

	assert.Empty(t, got.Items)
	assert.Equal(t, 1, repo.deletes)

	payload, err := repo.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Nil(t, payload, "slot should be removed, not overwritten")
}

func TestCartService_WriteFailureKeepsStateInMemory(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(&failingCartsRepo{}, WithSessionCache(100, time.Minute))
	defer svc.Stop()

	got := svc.Dispatch(ctx, "session-1", cart.AddItem{Item: cakeItem(1, 2)})
	require.Len(t, got.Items, 1)

	// The cached state survives even though every write failed.
	again := svc.Snapshot(ctx, "session-1")
	require.Len(t, again.Items, 1)
	assert.Equal(t, 2, again.ItemCount)
}

func TestCartService_ReadFailureStartsEmpty(t *testing.T) {
	svc := NewCartService(&failingCartsRepo{})
	defer svc.Stop()

	got := svc.Snapshot(context.Background(), "session-1")

	assert.Empty(t, got.Items)
	assert.Equal(t, 0, got.ItemCount)
}

func TestCartService_MalformedSlotResetsToEmpty(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInMemoryCartsRepository()
	require.NoError(t, repo.Save(ctx, "session-1", []byte("{{{not json")))

	svc := NewCartService(repo)
	defer svc.Stop()

	got := svc.Snapshot(ctx, "session-1")

	assert.Empty(t, got.Items)
	assert.True(t, got.Total.IsZero())
}

func TestCartService_StaleSlotAggregatesAreRecomputed(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInMemoryCartsRepository()
	payload := []byte(`{
		"items": [
			{"id": "a", "product": {"id": 1, "name": "Cake", "price": "500"},
			 "quantity": 2, "weight": "1kg", "flavor": "vanilla", "unit_price": "500"}
		],
		"total": "1",
		"item_count": 99
	}`)
	require.NoError(t, repo.Save(ctx, "session-1", payload))

	svc := NewCartService(repo)
	defer svc.Stop()

	got := svc.Snapshot(ctx, "session-1")
	require.Len(t, got.Items, 1)
	assert.Equal(t, "1000", got.Total.String())
	assert.Equal(t, 2, got.ItemCount)
}

func TestCartService_CacheAvoidsRepeatedSlotReads(t *testing.T) {
	ctx := context.Background()
	repo := newRecordingCartsRepo()
	svc := NewCartService(repo, WithSessionCache(100, time.Minute))
	defer svc.Stop()

	svc.Dispatch(ctx, "session-1", cart.AddItem{Item: cakeItem(1, 1)})
	first := svc.Snapshot(ctx, "session-1")
	second := svc.Snapshot(ctx, "session-1")

	assert.Equal(t, first, second)
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(repository.NewInMemoryCartsRepository())
	defer svc.Stop()

	svc.Dispatch(ctx, "session-a", cart.AddItem{Item: cakeItem(1, 1)})
	svc.Dispatch(ctx, "session-b", cart.AddItem{Item: cakeItem(2, 3)})

	a := svc.Snapshot(ctx, "session-a")
	b := svc.Snapshot(ctx, "session-b")

	assert.Equal(t, 1, a.ItemCount)
	assert.Equal(t, 3, b.ItemCount)
	assert.NotEqual(t, a.Items[0].Product.ID, b.Items[0].Product.ID)
}

func TestCartService_ConcurrentDispatchesOnOneSession(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(repository.NewInMemoryCartsRepository(), WithSessionCache(100, time.Minute))
	defer svc.Stop()

	const workers = 8
	done := make(chan struct{})
	for i := 0; i < workers; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			svc.Dispatch(ctx, "session-1", cart.AddItem{Item: cakeItem(1, 1)})
		}()
	}
	for i := 0; i < workers; i++ {
		<-done
	}

	got := svc.Snapshot(ctx, "session-1")
	require.Len(t, got.Items, 1, "same variant merges into one line item")
	assert.Equal(t, workers, got.ItemCount)
}

func TestCartService_ImplementsInterface(t *testing.T) {
	var _ CartService = (*CartServiceImpl)(nil)
}
