package cache

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/deppfellow/go-socialmedia/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements the commands the cache uses on top of a map.
// Any other Cmdable method panics through the nil embedded interface.
type fakeRedis struct {
	redis.Cmdable
	data    map[string]string
	ttls    map[string]time.Duration
	failGet error
	failSet error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func toString(value interface{}) string {
	switch v := value.(type) {
	case []byte:
		return string(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.failGet != nil {
		return redis.NewStringResult("", f.failGet)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.failSet != nil {
		return redis.NewStatusResult("", f.failSet)
	}
	f.data[key] = toString(value)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	if f.failSet != nil {
		return redis.NewBoolResult(false, f.failSet)
	}
	if _, ok := f.data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.data[key] = toString(value)
	f.ttls[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func TestMessageCache(t *testing.T) {
	ctx := context.Background()
	message := &model.Message{MessageID: 1, PostedBy: 1, MessageText: "hi", TimePostedEpoch: 1000}

	t.Run("miss returns not found without error", func(t *testing.T) {
		req := require.New(t)
		c := NewMessageCache(newFakeRedis(), time.Minute)

		got, ok, err := c.Get(ctx, 1)

		req.NoError(err)
		req.False(ok)
		req.Nil(got)
	})

	t.Run("fill then get round trips with ttl", func(t *testing.T) {
		req := require.New(t)
		fake := newFakeRedis()
		c := NewMessageCache(fake, time.Minute)

		req.NoError(c.Fill(ctx, message))
		got, ok, err := c.Get(ctx, 1)

		req.NoError(err)
		req.True(ok)
		req.Equal(message, got)
		req.Equal(time.Minute, fake.ttls["socialmedia:message:1"])
	})

	t.Run("invalidate hides a cached message", func(t *testing.T) {
		req := require.New(t)
		c := NewMessageCache(newFakeRedis(), time.Minute)

		req.NoError(c.Fill(ctx, message))
		req.NoError(c.Invalidate(ctx, 1))
		got, ok, err := c.Get(ctx, 1)

		req.NoError(err)
		req.False(ok)
		req.Nil(got)
	})

	t.Run("fill after invalidate does not resurrect the old row", func(t *testing.T) {
		req := require.New(t)
		c := NewMessageCache(newFakeRedis(), time.Minute)

		req.NoError(c.Invalidate(ctx, 1))
		req.NoError(c.Fill(ctx, message))
		_, ok, err := c.Get(ctx, 1)

		req.NoError(err)
		req.False(ok)
	})

	t.Run("invalidate failure is an error", func(t *testing.T) {
		fake := newFakeRedis()
		fake.failSet = errors.New("redis down")
		c := NewMessageCache(fake, time.Minute)

		require.Error(t, c.Invalidate(ctx, 1))
	})

	t.Run("redis failure is an error", func(t *testing.T) {
		req := require.New(t)
		fake := newFakeRedis()
		fake.failGet = errors.New("dial tcp: connection refused")
		c := NewMessageCache(fake, time.Minute)

		_, ok, err := c.Get(ctx, 1)

		req.Error(err)
		req.False(ok)
	})
}
