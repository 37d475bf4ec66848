package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"storefront/internal/domain/model"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func entry(id string, price string, qty int) model.CartEntry {
	return model.CartEntry{ID: id, Name: "name-" + id, Price: model.MustPrice(price), Quantity: qty}
}

func newStore(t *testing.T) (*usecase.CartStore, *memCartRepo) {
	t.Helper()
	r := &memCartRepo{}
	return usecase.NewCartStore(context.Background(), r, zaptest.NewLogger(t)), r
}

func TestCartStore_AddMergesSameID(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	s.Add(ctx, entry("p1", "9.99", 2))
	second := entry("p1", "1.00", 3)
	second.Name = "renamed"
	st := s.Add(ctx, second)

	require.Len(t, st.Entries, 1)
	assert.Equal(t, 5, st.Entries[0].Quantity)
	assert.Equal(t, "name-p1", st.Entries[0].Name)
	assert.Equal(t, "9.99", st.Entries[0].Price.String())
}

func TestCartStore_AddNonPositiveQuantityCountsAsOne(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	s.Add(ctx, entry("p1", "1", 0))
	st := s.Add(ctx, entry("p1", "1", -4))

	require.Len(t, st.Entries, 1)
	assert.Equal(t, 2, st.Entries[0].Quantity)
}

func TestCartStore_AddKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	s.Add(ctx, entry("b", "1", 1))
	s.Add(ctx, entry("a", "1", 1))
	st := s.Add(ctx, entry("b", "1", 1))

	require.Len(t, st.Entries, 2)
	assert.Equal(t, "b", st.Entries[0].ID)
	assert.Equal(t, "a", st.Entries[1].ID)
}

func TestCartStore_Remove(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)
	s.Add(ctx, entry("p1", "1", 1))
	s.Add(ctx, entry("p2", "1", 1))

	st := s.Remove(ctx, "missing")
	assert.Len(t, st.Entries, 2)

	st = s.Remove(ctx, "p1")
	require.Len(t, st.Entries, 1)
	assert.Equal(t, "p2", st.Entries[0].ID)
}

func TestCartStore_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	s, r := newStore(t)
	s.Add(ctx, entry("p1", "1", 1))

	st, err := s.UpdateQuantity(ctx, "p1", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, st.Entries[0].Quantity)

	st, err = s.UpdateQuantity(ctx, "missing", 3)
	require.NoError(t, err)
	assert.Len(t, st.Entries, 1)

	saves := r.saves
	st, err = s.UpdateQuantity(ctx, "p1", 0)
	assert.ErrorIs(t, err, usecase.ErrInvalidQuantity)
	assert.Equal(t, 7, st.Entries[0].Quantity)
	assert.Equal(t, saves, r.saves)
}

func TestCartStore_Clear(t *testing.T) {
	ctx := context.Background()
	s, r := newStore(t)
	s.Add(ctx, entry("p1", "1", 1))

	st := s.Clear(ctx)
	assert.True(t, st.IsEmpty())
	assert.True(t, r.saved().IsEmpty())
}

func TestCartStore_PersistsAfterEveryMutation(t *testing.T) {
	ctx := context.Background()
	s, r := newStore(t)

	s.Add(ctx, entry("p1", "2.50", 2))
	assert.Equal(t, s.Snapshot(), r.saved())

	_, _ = s.UpdateQuantity(ctx, "p1", 4)
	assert.Equal(t, s.Snapshot(), r.saved())

	s.Remove(ctx, "p1")
	assert.Equal(t, s.Snapshot(), r.saved())
	assert.Equal(t, 3, r.saves)
}

func TestCartStore_SnapshotIsIsolated(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)
	s.Add(ctx, entry("p1", "1", 1))

	snap := s.Snapshot()
	_, _ = s.UpdateQuantity(ctx, "p1", 9)
	snap.Entries[0].Name = "mutated"

	assert.Equal(t, 1, snap.Entries[0].Quantity)
	assert.Equal(t, "name-p1", s.Snapshot().Entries[0].Name)
}

func TestCartStore_Subscribe(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	var got []int
	unsubscribe := s.Subscribe(func(st model.CartState) {
		got = append(got, st.Count())
	})

	s.Add(ctx, entry("p1", "1", 2))
	s.Add(ctx, entry("p2", "1", 1))
	unsubscribe()
	unsubscribe()
	s.Clear(ctx)

	assert.Equal(t, []int{2, 3}, got)
}

func TestCartStore_RehydratesAndNormalizes(t *testing.T) {
	r := &memCartRepo{state: model.CartState{Entries: []model.CartEntry{
		entry("p1", "1", 1),
		entry("", "1", 1),
		entry("p2", "1", 2),
		entry("p1", "1", 3),
	}}}

	s := usecase.NewCartStore(context.Background(), r, zaptest.NewLogger(t))

	st := s.Snapshot()
	require.Len(t, st.Entries, 2)
	assert.Equal(t, "p1", st.Entries[0].ID)
	assert.Equal(t, 4, st.Entries[0].Quantity)
	assert.Equal(t, "p2", st.Entries[1].ID)
}

func TestCartStore_LoadErrorStartsEmpty(t *testing.T) {
	r := new(MockCartRepository)
	r.On("Load", mock.Anything).Return(model.CartState{}, errors.New("corrupt"))

	s := usecase.NewCartStore(context.Background(), r, zaptest.NewLogger(t))

	assert.True(t, s.Snapshot().IsEmpty())
	r.AssertExpectations(t)
}

func TestCartStore_SaveErrorIsLoggedNotSurfaced(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	r := new(MockCartRepository)
	r.On("Load", mock.Anything).Return(model.CartState{}, nil)
	r.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	s := usecase.NewCartStore(context.Background(), r, zap.New(core))
	st := s.Add(context.Background(), entry("p1", "1", 1))

	assert.Len(t, st.Entries, 1)
	assert.Len(t, s.Snapshot().Entries, 1)
	assert.Equal(t, 1, logs.FilterMessage("cart persist failed").Len())
}

func TestCartStore_ConcurrentAddsAreAtomic(t *testing.T) {
	ctx := context.Background()
	s, r := newStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add(ctx, entry("p1", "1", 1))
		}()
	}
	wg.Wait()

	st := s.Snapshot()
	require.Len(t, st.Entries, 1)
	assert.Equal(t, 50, st.Entries[0].Quantity)
	assert.Equal(t, st, r.saved())
}

func TestCartStore_AddRejectsNegativePrice(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.WarnLevel)
	r := &memCartRepo{}
	s := usecase.NewCartStore(ctx, r, zap.New(core))

	s.Add(ctx, entry("p1", "9.99", 1))
	st := s.Add(ctx, entry("p2", "-50", 2))

	require.Len(t, st.Entries, 1)
	assert.Equal(t, "p1", st.Entries[0].ID)
	assert.Equal(t, "9.99", st.Total().StringFixed(2))
	assert.Equal(t, 1, logs.FilterMessage("cart add ignored: negative price").Len())
	assert.Equal(t, st, r.saved())
}

func TestCartStore_RehydrateDropsNegativePrice(t *testing.T) {
	r := &memCartRepo{state: model.CartState{Entries: []model.CartEntry{
		entry("p1", "-1", 1),
		entry("p2", "0", 1),
	}}}

	s := usecase.NewCartStore(context.Background(), r, zaptest.NewLogger(t))

	st := s.Snapshot()
	require.Len(t, st.Entries, 1)
	assert.Equal(t, "p2", st.Entries[0].ID)
}

func TestCartStore_PersistsWhenCallerContextIsCancelled(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	r := infraRepo.NewCartSlotRepository(infraRepo.NewRedisSlotRepository(client))

	core, logs := observer.New(zapcore.WarnLevel)
	s := usecase.NewCartStore(context.Background(), r, zap.New(core))
	s.Add(context.Background(), entry("p1", "9.99", 2))

	// クライアント切断などで ctx が切れた後の変更
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Clear(ctx)

	assert.Equal(t, 0, logs.FilterMessage("cart persist failed").Len())

	restarted := usecase.NewCartStore(context.Background(), r, zaptest.NewLogger(t))
	assert.True(t, restarted.Snapshot().IsEmpty())
}

func TestCartStore_NotificationsFollowMutationOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	var mu sync.Mutex
	var seen []int
	s.Subscribe(func(st model.CartState) {
		mu.Lock()
		seen = append(seen, st.Count())
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add(ctx, entry("p1", "1", 1))
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 50)
	for i, n := range seen {
		assert.Equal(t, i+1, n)
	}
	assert.Equal(t, s.Snapshot().Count(), seen[len(seen)-1])
}
