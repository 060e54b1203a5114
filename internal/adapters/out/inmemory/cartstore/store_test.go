package cartstore_test

import (
	"sync"
	"testing"
	"time"

	"foodorder/internal/adapters/out/inmemory/cartstore"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T, name string, price float64) *menu.Item {
	t.Helper()
	money, err := kernel.NewMoneyFromFloat(price)
	require.NoError(t, err)
	item, err := menu.NewItem(kernel.NewUUID(), name, money, "mains", "")
	require.NoError(t, err)
	return item
}

func TestInMemoryCartStore_AddItem_AccumulatesQuantity(t *testing.T) {
	ctx := t.Context()
	store := cartstore.NewInMemoryCartStore()
	burger := newTestItem(t, "Classic Burger", 8.99)

	require.NoError(t, store.AddItem(ctx, "session-1", burger, 1))
	require.NoError(t, store.AddItem(ctx, "session-1", burger, 2))

	current, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, current.Lines(), 1)
	assert.Equal(t, 3, current.Lines()[0].Quantity())
	assert.Equal(t, int64(2697), current.Total().Cents())
}

func TestInMemoryCartStore_Get_UnknownSessionYieldsEmptyCart(t *testing.T) {
	store := cartstore.NewInMemoryCartStore()

	current, err := store.Get(t.Context(), "never-seen")
	require.NoError(t, err)
	assert.True(t, current.IsEmpty())
}

func TestInMemoryCartStore_Get_ReturnsDetachedSnapshot(t *testing.T) {
	ctx := t.Context()
	store := cartstore.NewInMemoryCartStore()
	burger := newTestItem(t, "Classic Burger", 8.99)
	require.NoError(t, store.AddItem(ctx, "session-1", burger, 1))

	snapshot, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	snapshot.Clear()

	current, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.False(t, current.IsEmpty())
}

func TestInMemoryCartStore_SessionsAreIsolated(t *testing.T) {
	ctx := t.Context()
	store := cartstore.NewInMemoryCartStore()

	require.NoError(t, store.AddItem(ctx, "session-1", newTestItem(t, "Classic Burger", 8.99), 1))
	require.NoError(t, store.AddItem(ctx, "session-2", newTestItem(t, "Crispy Fries", 4.50), 1))

	first, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	second, err := store.Get(ctx, "session-2")
	require.NoError(t, err)

	require.Len(t, first.Lines(), 1)
	require.Len(t, second.Lines(), 1)
	assert.Equal(t, "Classic Burger", first.Lines()[0].Name())
	assert.Equal(t, "Crispy Fries", second.Lines()[0].Name())
}

func TestInMemoryCartStore_Clear_IsIdempotent(t *testing.T) {
	ctx := t.Context()
	store := cartstore.NewInMemoryCartStore()
	require.NoError(t, store.AddItem(ctx, "session-1", newTestItem(t, "Classic Burger", 8.99), 1))

	require.NoError(t, store.Clear(ctx, "session-1"))
	require.NoError(t, store.Clear(ctx, "session-1"))
	require.NoError(t, store.Clear(ctx, "never-seen"))

	current, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, current.IsEmpty())
}

func TestInMemoryCartStore_ConcurrentAdds_AllApplied(t *testing.T) {
	ctx := t.Context()
	store := cartstore.NewInMemoryCartStore()
	burger := newTestItem(t, "Classic Burger", 8.99)

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			assert.NoError(t, store.AddItem(ctx, "session-1", burger, 1))
		}()
	}
	wg.Wait()

	current, err := store.Get(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, current.Lines(), 1)
	assert.Equal(t, workers, current.Lines()[0].Quantity())
}

func TestInMemoryCartStore_PurgeIdle_DropsOnlyIdleCarts(t *testing.T) {
	ctx := t.Context()
	store := cartstore.NewInMemoryCartStore()

	require.NoError(t, store.AddItem(ctx, "idle", newTestItem(t, "Classic Burger", 8.99), 1))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, store.AddItem(ctx, "active", newTestItem(t, "Crispy Fries", 4.50), 1))

	removed, err := store.PurgeIdle(ctx, 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	idle, err := store.Get(ctx, "idle")
	require.NoError(t, err)
	assert.True(t, idle.IsEmpty())

	active, err := store.Get(ctx, "active")
	require.NoError(t, err)
	assert.False(t, active.IsEmpty())
}
