package database

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menubook/backend/internal/testhelpers"
)

func TestRedisListStore(t *testing.T) {
	client := testhelpers.SetupTestRedis(t)
	store := NewRedisListStore(client)
	ctx := context.Background()

	t.Run("range of missing key is empty", func(t *testing.T) {
		values, err := store.Range(ctx, "menu:absent")
		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("push prepends", func(t *testing.T) {
		key := "menu:push"
		require.NoError(t, store.Push(ctx, key, "1"))
		require.NoError(t, store.Push(ctx, key, "2"))
		require.NoError(t, store.Push(ctx, key, "3"))

		values, err := store.Range(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []string{"3", "2", "1"}, values)
	})

	t.Run("remove drops a single occurrence", func(t *testing.T) {
		key := "menu:remove"
		for _, v := range []string{"1", "2", "1"} {
			require.NoError(t, store.Push(ctx, key, v))
		}

		require.NoError(t, store.Remove(ctx, key, "1"))

		values, err := store.Range(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []string{"2", "1"}, values)
	})

	t.Run("remove of absent value is a no-op", func(t *testing.T) {
		key := "menu:remove-absent"
		require.NoError(t, store.Push(ctx, key, "1"))
		require.NoError(t, store.Remove(ctx, key, "9"))

		values, err := store.Range(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []string{"1"}, values)
	})

	t.Run("delete drops the whole list", func(t *testing.T) {
		key := "menu:delete"
		require.NoError(t, store.Push(ctx, key, "1"))
		require.NoError(t, store.Delete(ctx, key))

		values, err := store.Range(ctx, key)
		require.NoError(t, err)
		assert.Empty(t, values)
	})
}

func TestRedisSessionLockerMutualExclusion(t *testing.T) {
	client := testhelpers.SetupTestRedis(t)
	locker := NewRedisSessionLocker(client, 5*time.Second)
	ctx := context.Background()

	const workers = 8
	var holders, entered int32

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := locker.Acquire(ctx, "race-session")
			if err != nil {
				t.Errorf("failed to acquire lock: %v", err)
				return
			}
			defer release()

			if atomic.AddInt32(&holders, 1) != 1 {
				t.Error("lock held by more than one worker")
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&holders, -1)
			atomic.AddInt32(&entered, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(workers), atomic.LoadInt32(&entered))
}

func TestRedisSessionLockerScopedPerSession(t *testing.T) {
	client := testhelpers.SetupTestRedis(t)
	locker := NewRedisSessionLocker(client, 5*time.Second)
	ctx := context.Background()

	releaseA, err := locker.Acquire(ctx, "session-a")
	require.NoError(t, err)
	defer releaseA()

	// A lock on one session must not block another
	quick, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	releaseB, err := locker.Acquire(quick, "session-b")
	require.NoError(t, err)
	releaseB()
}

func TestRedisSessionLockerAcquireHonorsContext(t *testing.T) {
	client := testhelpers.SetupTestRedis(t)
	locker := NewRedisSessionLocker(client, 5*time.Second)

	release, err := locker.Acquire(context.Background(), "held-session")
	require.NoError(t, err)
	defer release()

	quick, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, err = locker.Acquire(quick, "held-session")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
