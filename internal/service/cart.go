package service

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cakeshop/cart-service/internal/cart"
	"github.com/cakeshop/cart-service/internal/domain/model"
	"github.com/cakeshop/cart-service/internal/metrics"
	"github.com/cakeshop/cart-service/internal/repository"
	"github.com/cakeshop/cart-service/internal/service/cache"
)

// numSessionLocks is the number of striped mutexes guarding session state.
// Must be a power of 2.
const numSessionLocks = 64

// CartService defines the interface for cart operations.
// This interface can be mocked for testing.
type CartService interface {
	// Snapshot returns the current cart state for a session.
	Snapshot(ctx context.Context, sessionID string) model.CartState

	// Dispatch applies an action to the session's cart and returns the
	// resulting state.
	Dispatch(ctx context.Context, sessionID string, action cart.Action) model.CartState
}

// CartOption configures a CartServiceImpl.
type CartOption func(*CartServiceImpl)

// CartServiceImpl implements CartService on top of a session cache and a
// durable slot repository. All transitions go through the pure reducer; the
// service only adds locking, caching, and persistence around it.
type CartServiceImpl struct {
	repo  repository.CartsRepositoryInterface
	cache cache.Cache
	locks [numSessionLocks]sync.Mutex
}

// NewCartService creates a new cart service implementation.
func NewCartService(repo repository.CartsRepositoryInterface, opts ...CartOption) *CartServiceImpl {
	s := &CartServiceImpl{
		repo: repo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithSessionCache enables in-memory session caching with the specified
// capacity and TTL.
func WithSessionCache(capacity int, ttl time.Duration) CartOption {
	return func(s *CartServiceImpl) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, 16)
		}
	}
}

// WithSessionCacheInterface allows injecting a custom cache implementation.
func WithSessionCacheInterface(c cache.Cache) CartOption {
	return func(s *CartServiceImpl) {
		s.cache = c
	}
}

// lockFor returns the striped mutex guarding the given session.
func (s *CartServiceImpl) lockFor(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return &s.locks[h.Sum32()&(numSessionLocks-1)]
}

// Snapshot returns the current cart state for a session.
func (s *CartServiceImpl) Snapshot(ctx context.Context, sessionID string) model.CartState {
	mu := s.lockFor(sessionID)
	mu.Lock()
	defer mu.Unlock()

	return s.load(ctx, sessionID)
}

// Dispatch applies an action to the session's cart and returns the resulting
// state. The transition itself cannot fail; persistence is best-effort and a
// failed slot write never loses the in-memory state.
func (s *CartServiceImpl) Dispatch(ctx context.Context, sessionID string, action cart.Action) model.CartState {
	start := time.Now()

	mu := s.lockFor(sessionID)
	mu.Lock()
	defer mu.Unlock()

	state := s.load(ctx, sessionID)
	next := cart.Apply(state, action)

	if s.cache != nil {
		s.cache.Set(sessionID, next)
	}
	s.persist(ctx, sessionID, action, next)

	metrics.RecordCartMutation(action.Name(), time.Since(start), "success")
	return next
}

// load resolves the session's state: cache first, then the durable slot, then
// the canonical empty cart. Caller must hold the session lock.
func (s *CartServiceImpl) load(ctx context.Context, sessionID string) model.CartState {
	if s.cache != nil {
		if state, ok := s.cache.Get(sessionID); ok {
			return state
		}
	}

	payload, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("Cart slot read failed, starting empty")
		return model.EmptyCart()
	}
	if payload == nil {
		return model.EmptyCart()
	}

	state, adopted := cart.DecodeState(payload)
	if adopted {
		metrics.RecordRestore("adopted")
	} else {
		metrics.RecordRestore("reset")
		log.Warn().Str("session_id", sessionID).Msg("Cart slot was unreadable, session reset to empty")
	}

	if s.cache != nil {
		s.cache.Set(sessionID, state)
	}
	return state
}

// persist writes the post-transition state to the durable slot. Clearing the
// cart deletes the slot instead of writing an empty payload. Failures are
// logged and swallowed; the session keeps working from memory.
func (s *CartServiceImpl) persist(ctx context.Context, sessionID string, action cart.Action, state model.CartState) {
	var err error
	if _, cleared := action.(cart.Clear); cleared {
		err = s.repo.Delete(ctx, sessionID)
	} else {
		var payload []byte
		payload, err = cart.EncodeState(state)
		if err == nil {
			err = s.repo.Save(ctx, sessionID, payload)
		}
	}

	if err != nil {
		metrics.RecordPersistFailure()
		log.Warn().
			Err(err).
			Str("session_id", sessionID).
			Str("action", action.Name()).
			Msg("Cart slot write failed, state kept in memory")
	}
}

// Stop releases cache resources.
func (s *CartServiceImpl) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}
