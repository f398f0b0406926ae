package streams

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastHub_PublishFansOut(t *testing.T) {
	t.Parallel()

	hub := newBroadcastHub[int]("test_fan_out", 4)
	first, cancelFirst := hub.Subscribe()
	second, cancelSecond := hub.Subscribe()
	t.Cleanup(cancelFirst)
	t.Cleanup(cancelSecond)

	assert.Equal(t, 2, hub.SubscriberCount())
	assert.Equal(t, 2, hub.Publish(7))
	assert.Equal(t, 7, <-first)
	assert.Equal(t, 7, <-second)
}

func TestBroadcastHub_SlowSubscriberMissesMessages(t *testing.T) {
	t.Parallel()

	hub := newBroadcastHub[int]("test_slow", 1)
	slow, cancelSlow := hub.Subscribe()
	fast, cancelFast := hub.Subscribe()
	t.Cleanup(cancelSlow)
	t.Cleanup(cancelFast)

	require.Equal(t, 2, hub.Publish(1))
	require.Equal(t, 1, <-fast)

	// slow still holds 1, so 2 only reaches fast
	assert.Equal(t, 1, hub.Publish(2))
	assert.Equal(t, 2, <-fast)
	assert.Equal(t, 1, <-slow)

	select {
	case v := <-slow:
		t.Fatalf("slow subscriber unexpectedly received %d", v)
	default:
	}
}

func TestBroadcastHub_CancelClosesChannel(t *testing.T) {
	t.Parallel()

	hub := newBroadcastHub[string]("test_cancel", 1)
	ch, cancel := hub.Subscribe()

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, hub.SubscriberCount())
	assert.Equal(t, 0, hub.Publish("ignored"))
}

func TestBroadcastHub_Close(t *testing.T) {
	t.Parallel()

	hub := NewBroadcastHub[string]("test_close")
	ch, cancel := hub.Subscribe()

	hub.Close()
	hub.Close()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, hub.Publish("after close"))

	late, _ := hub.Subscribe()
	_, open = <-late
	assert.False(t, open)
}

func TestBroadcastHub_ConcurrentSubscribeAndPublish(t *testing.T) {
	t.Parallel()

	hub := NewBroadcastHub[int]("test_concurrent")
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, cancel := hub.Subscribe()
			cancel()
		}()
		go func(n int) {
			defer wg.Done()
			hub.Publish(n)
		}(i)
	}
	wg.Wait()
	hub.Close()

	assert.Equal(t, 0, hub.SubscriberCount())
}
