package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLocker(t *testing.T) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	l := NewRedisLocker(client)
	l.Retry = 5 * time.Millisecond
	return l, mr
}

func TestRedisLockerAcquireAndRelease(t *testing.T) {
	l, mr := newRedisLocker(t)
	ctx := context.Background()

	unlock, err := l.Lock(ctx, UserKey(7))
	require.NoError(t, err)
	assert.True(t, mr.Exists("finlit:lock:user:7"))
	assert.Equal(t, l.TTL, mr.TTL("finlit:lock:user:7"))

	unlock()
	assert.False(t, mr.Exists("finlit:lock:user:7"))

	unlock, err = l.Lock(ctx, UserKey(7))
	require.NoError(t, err)
	unlock()
}

func TestRedisLockerContention(t *testing.T) {
	l, _ := newRedisLocker(t)

	unlock, err := l.Lock(context.Background(), UserKey(1))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, UserKey(1))
	assert.ErrorIs(t, err, ErrNotAcquired)

	acquired := make(chan struct{})
	go func() {
		unlockB, err := l.Lock(context.Background(), UserKey(1))
		if err == nil {
			unlockB()
		}
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second holder acquired a held lock")
	case <-time.After(20 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock was not handed over after release")
	}
}

func TestRedisLockerReleaseChecksToken(t *testing.T) {
	l, mr := newRedisLocker(t)

	unlock, err := l.Lock(context.Background(), UserKey(3))
	require.NoError(t, err)

	// The lease expires and another node takes the key.
	mr.FastForward(l.TTL + time.Second)
	require.False(t, mr.Exists("finlit:lock:user:3"))
	require.NoError(t, mr.Set("finlit:lock:user:3", "other-node"))

	unlock()
	got, err := mr.Get("finlit:lock:user:3")
	require.NoError(t, err)
	assert.Equal(t, "other-node", got)
}
