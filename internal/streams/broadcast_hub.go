package streams

import (
	"sync"
)

const (
	defaultSubscriberBuffer = 16
)

// BroadcastHub fans every published message out to all current subscribers.
// Publish never blocks: a subscriber whose buffer is full misses that message.
type BroadcastHub[T any] struct {
	streamID string
	buffer   int

	mu          sync.RWMutex
	subscribers map[uint64]chan T
	nextID      uint64
	closed      bool
}

func newBroadcastHub[T any](streamID string, buffer int) *BroadcastHub[T] {
	return &BroadcastHub[T]{
		streamID:    streamID,
		buffer:      buffer,
		subscribers: make(map[uint64]chan T),
	}
}

func NewBroadcastHub[T any](streamID string) *BroadcastHub[T] {
	return newBroadcastHub[T](streamID, defaultSubscriberBuffer)
}

// Subscribe registers a subscriber. The returned cancel func unregisters it and
// closes the channel; it is safe to call more than once. Subscribing to a closed
// hub yields an already closed channel.
func (hub *BroadcastHub[T]) Subscribe() (<-chan T, func()) {
	ch := make(chan T, hub.buffer)

	hub.mu.Lock()
	defer hub.mu.Unlock()
	if hub.closed {
		close(ch)
		return ch, func() {}
	}

	id := hub.nextID
	hub.nextID++
	hub.subscribers[id] = ch
	metricHubSubscribers.WithLabelValues(hub.streamID).Inc()

	var once sync.Once
	return ch, func() {
		once.Do(func() { hub.unsubscribe(id) })
	}
}

func (hub *BroadcastHub[T]) unsubscribe(id uint64) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	ch, ok := hub.subscribers[id]
	if !ok {
		return
	}
	delete(hub.subscribers, id)
	close(ch)
	metricHubSubscribers.WithLabelValues(hub.streamID).Dec()
}

// Publish delivers msg to every subscriber with buffer room and returns how many received it.
func (hub *BroadcastHub[T]) Publish(msg T) int {
	hub.mu.RLock()
	defer hub.mu.RUnlock()
	if hub.closed {
		return 0
	}

	delivered := 0
	for _, ch := range hub.subscribers {
		select {
		case ch <- msg:
			delivered++
		default:
			metricHubDroppedTotal.WithLabelValues(hub.streamID).Inc()
		}
	}
	metricHubPublishedTotal.WithLabelValues(hub.streamID).Inc()
	return delivered
}

func (hub *BroadcastHub[T]) SubscriberCount() int {
	hub.mu.RLock()
	defer hub.mu.RUnlock()
	return len(hub.subscribers)
}

// Close closes every subscriber channel. Later publishes are discarded.
func (hub *BroadcastHub[T]) Close() {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	if hub.closed {
		return
	}
	hub.closed = true
	for id, ch := range hub.subscribers {
		delete(hub.subscribers, id)
		close(ch)
		metricHubSubscribers.WithLabelValues(hub.streamID).Dec()
	}
}
