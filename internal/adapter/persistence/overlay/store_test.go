package overlay

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"warsto_quotation/internal/usecase/interfaces"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), mr
}

func storesUnderTest(t *testing.T) map[string]interfaces.ICustomOptionStore {
	redisStore, _ := newRedisStore(t, time.Hour)
	return map[string]interfaces.ICustomOptionStore{
		"memory": NewMemoryStore(),
		"redis":  redisStore,
	}
}

func TestStore_AddAndList(t *testing.T) {
	ctx := context.Background()
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			empty, err := store.List(ctx, "v1", "1 BHK")
			require.NoError(t, err)
			assert.Empty(t, empty)

			added, overlay, err := store.Add(ctx, "v1", "1 BHK", "LivingRoom", "Bar Counter")
			require.NoError(t, err)
			assert.True(t, added)
			assert.Equal(t, []string{"Bar Counter"}, overlay)

			added, overlay, err = store.Add(ctx, "v1", "1 BHK", "LivingRoom", "Pooja Unit")
			require.NoError(t, err)
			assert.True(t, added)
			assert.Equal(t, []string{"Bar Counter", "Pooja Unit"}, overlay)

			added, overlay, err = store.Add(ctx, "v1", "1 BHK", "LivingRoom", "Bar Counter")
			require.NoError(t, err)
			assert.False(t, added)
			assert.Equal(t, []string{"Bar Counter", "Pooja Unit"}, overlay)

			opts, err := store.List(ctx, "v1", "1 BHK")
			require.NoError(t, err)
			assert.Equal(t, []string{"Bar Counter", "Pooja Unit"}, opts["LivingRoom"])

			other, err := store.List(ctx, "v1", "2 BHK")
			require.NoError(t, err)
			assert.Empty(t, other, "overlays are scoped per dwelling size")
		})
	}
}

func TestStore_VisitorIsolation(t *testing.T) {
	ctx := context.Background()
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			addedA, _, err := store.Add(ctx, "visitor-a", "2 BHK", "MasterBedroom", "Vanity")
			require.NoError(t, err)
			addedB, _, err := store.Add(ctx, "visitor-b", "2 BHK", "MasterBedroom", "Vanity")
			require.NoError(t, err)
			assert.True(t, addedA)
			assert.True(t, addedB)

			_, _, err = store.Add(ctx, "visitor-a", "2 BHK", "MasterBedroom", "Mirror")
			require.NoError(t, err)

			b, err := store.List(ctx, "visitor-b", "2 BHK")
			require.NoError(t, err)
			assert.Equal(t, []string{"Vanity"}, b["MasterBedroom"])

			c, err := store.List(ctx, "visitor-c", "2 BHK")
			require.NoError(t, err)
			assert.Empty(t, c)
		})
	}
}

func TestStore_ConcurrentAddsSameVisitor(t *testing.T) {
	ctx := context.Background()
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			const workers = 4
			var (
				wg    sync.WaitGroup
				mu    sync.Mutex
				wins  int
				errCh = make(chan error, workers*2)
			)
			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					added, _, err := store.Add(ctx, "v1", "3 BHK", "LivingRoom", "Bar Counter")
					if err != nil {
						errCh <- err
						return
					}
					if added {
						mu.Lock()
						wins++
						mu.Unlock()
					}
					if _, _, err := store.Add(ctx, "v1", "3 BHK", "LivingRoom", fmt.Sprintf("Item %d", i)); err != nil {
						errCh <- err
					}
				}(i)
			}
			wg.Wait()
			close(errCh)
			for err := range errCh {
				require.NoError(t, err)
			}

			assert.Equal(t, 1, wins, "the same item must be added exactly once")
			opts, err := store.List(ctx, "v1", "3 BHK")
			require.NoError(t, err)
			assert.Len(t, opts["LivingRoom"], workers+1)
		})
	}
}

func TestRedisStore_TTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, 2*time.Hour)

	_, _, err := store.Add(ctx, "v1", "1 BHK", "LivingRoom", "Bar Counter")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, mr.TTL(overlayKey("v1", "1 BHK")))

	mr.FastForward(2*time.Hour + time.Second)

	opts, err := store.List(ctx, "v1", "1 BHK")
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestRedisStore_DefaultTTL(t *testing.T) {
	store := NewRedisStore(nil, 0)
	assert.Equal(t, DefaultTTL, store.ttl)
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_, _, err := store.Add(ctx, "v1", "1 BHK", "LivingRoom", "Bar Counter")
	require.NoError(t, err)

	opts, _ := store.List(ctx, "v1", "1 BHK")
	opts["LivingRoom"][0] = "mutated"

	again, _ := store.List(ctx, "v1", "1 BHK")
	assert.Equal(t, "Bar Counter", again["LivingRoom"][0])
}
