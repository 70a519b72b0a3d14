package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/commands"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/kernel"
	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/order"
	"github.com/francomiret/orders-tracker-app/internal/core/ports"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lockingOrderStore is an in-memory stand-in for the database that mimics
// row-level locking: GetForUpdate holds a per-order lock until the
// transaction commits or rolls back.
type lockingOrderStore struct {
	mu     sync.Mutex
	orders map[string]*order.Order
	events map[string]*order.Event
	locks  map[string]*sync.Mutex
	nextID uint
}

func newLockingOrderStore() *lockingOrderStore {
	return &lockingOrderStore{
		orders: make(map[string]*order.Order),
		events: make(map[string]*order.Event),
		locks:  make(map[string]*sync.Mutex),
	}
}

func (s *lockingOrderStore) put(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID().String()] = snapshotOrder(o)
	if _, ok := s.locks[o.ID().String()]; !ok {
		s.locks[o.ID().String()] = &sync.Mutex{}
	}
}

func (s *lockingOrderStore) eventCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func (s *lockingOrderStore) status(id kernel.UUID) order.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id.String()].Status()
}

func snapshotOrder(o *order.Order) *order.Order {
	c, err := order.RestoreOrder(o.ID(), o.CustomerName(), o.UserID(), o.Status(),
		o.EstimatedDeliveryAt(), o.CreatedAt(), o.UpdatedAt())
	if err != nil {
		panic(err)
	}
	return c
}

type lockingOrderUoW struct {
	store *lockingOrderStore
	held  []*sync.Mutex
	done  bool
}

func (u *lockingOrderUoW) Begin(context.Context) error { return nil }

func (u *lockingOrderUoW) Commit(context.Context) error {
	u.release()
	return nil
}

func (u *lockingOrderUoW) Rollback(context.Context) error {
	u.release()
	return nil
}

func (u *lockingOrderUoW) release() {
	if u.done {
		return
	}
	u.done = true
	for _, l := range u.held {
		l.Unlock()
	}
	u.held = nil
}

func (u *lockingOrderUoW) OrderRepository() ports.OrderRepository { return u }

func (u *lockingOrderUoW) Add(_ context.Context, o *order.Order) error {
	u.store.put(o)
	return nil
}

func (u *lockingOrderUoW) Update(_ context.Context, o *order.Order) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.store.orders[o.ID().String()] = snapshotOrder(o)
	return nil
}

func (u *lockingOrderUoW) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	stored, ok := u.store.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}
	return snapshotOrder(stored), nil
}

func (u *lockingOrderUoW) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	u.store.mu.Lock()
	rowLock, ok := u.store.locks[id.String()]
	u.store.mu.Unlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}

	rowLock.Lock()
	u.held = append(u.held, rowLock)
	return u.Get(ctx, id)
}

func (u *lockingOrderUoW) GetUndeliveredPage(context.Context, int, int) ([]*order.Order, error) {
	return nil, nil
}

func (u *lockingOrderUoW) Delete(_ context.Context, id kernel.UUID) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	delete(u.store.orders, id.String())
	return nil
}

func (u *lockingOrderUoW) AddEvent(_ context.Context, event *order.Event) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.store.nextID++
	if err := event.AssignID(u.store.nextID); err != nil {
		return err
	}
	u.store.events[event.EventID()] = event
	return nil
}

func (u *lockingOrderUoW) EventExists(_ context.Context, eventID string) (bool, error) {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	_, ok := u.store.events[eventID]
	return ok, nil
}

func (u *lockingOrderUoW) GetEvents(context.Context, kernel.UUID) ([]*order.Event, error) {
	return nil, nil
}

type lockingOrderUoWFactory struct{ store *lockingOrderStore }

func (f lockingOrderUoWFactory) Create() commands.OrderUoW {
	return &lockingOrderUoW{store: f.store}
}

// Two concurrent transitions on the same order race on the legality check.
// With per-order locking exactly one of CREATED->PREPARING and
// CREATED->DELIVERED can win: whichever runs second sees the other's
// write, and DELIVERED is never reachable from either observed status.
func TestChangeOrderStatusCommandHandler_ConcurrentTransitionsAreSerialized(t *testing.T) {
	store := newLockingOrderStore()
	id := kernel.NewUUID()
	o, err := order.RestoreOrder(id, "Jane Smith", nil, order.Created, nil,
		time.Now().Add(-time.Hour), time.Now().Add(-time.Hour))
	require.NoError(t, err)
	store.put(o)

	h := commands.NewChangeOrderStatusCommandHandler(lockingOrderUoWFactory{store: store}, nil)

	var wg sync.WaitGroup
	results := make([]error, 2)
	targets := []order.Status{order.Preparing, order.Delivered}
	for i, target := range targets {
		cmd, cmdErr := commands.NewChangeOrderStatusCommand(id, target, "")
		require.NoError(t, cmdErr)

		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = h.Handle(context.Background(), cmd)
		}()
	}
	wg.Wait()

	var failures int
	for _, resultErr := range results {
		if resultErr != nil {
			assert.ErrorIs(t, resultErr, errs.ErrValueIsInvalid)
			failures++
		}
	}

	assert.Equal(t, 1, failures, "exactly one transition must be rejected")
	assert.Equal(t, order.Preparing, store.status(id))
	assert.Equal(t, 1, store.eventCount())
}

// Replaying the same event ID after the order has moved on must not
// append a second event.
func TestChangeOrderStatusCommandHandler_EventReplayAcrossTransitions(t *testing.T) {
	store := newLockingOrderStore()
	id := kernel.NewUUID()
	o, err := order.RestoreOrder(id, "Jane Smith", nil, order.Created, nil,
		time.Now().Add(-time.Hour), time.Now().Add(-time.Hour))
	require.NoError(t, err)
	store.put(o)

	h := commands.NewChangeOrderStatusCommandHandler(lockingOrderUoWFactory{store: store}, nil)
	ctx := context.Background()

	cmd, err := commands.NewChangeOrderStatusCommand(id, order.Preparing, "evt-replay")
	require.NoError(t, err)
	first, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "evt-replay", first.EventID)

	next, err := commands.NewChangeOrderStatusCommand(id, order.Dispatched, "")
	require.NoError(t, err)
	_, err = h.Handle(ctx, next)
	require.NoError(t, err)

	replayed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Contains(t, replayed.Message, "already processed")
	assert.Equal(t, order.Dispatched, store.status(id))
	assert.Equal(t, 2, store.eventCount())
}
