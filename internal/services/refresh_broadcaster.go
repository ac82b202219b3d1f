package services

import (
	"sync"
	"sync/atomic"
)

// RefreshBroadcaster tells subscribers that ledger state changed. Each
// subscriber has a one-slot buffer, so a pending signal absorbs further
// publishes until it is read.
type RefreshBroadcaster struct {
	mu          sync.Mutex
	subscribers map[uint64]chan struct{}
	nextID      uint64
	published   atomic.Uint64
	metrics     MetricsRecorderInterface
}

func NewRefreshBroadcaster(metrics MetricsRecorderInterface) *RefreshBroadcaster {
	return &RefreshBroadcaster{
		subscribers: make(map[uint64]chan struct{}),
		metrics:     metrics,
	}
}

// Subscribe returns the signal channel and the func that ends the
// subscription and closes the channel.
func (b *RefreshBroadcaster) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch
	count := len(b.subscribers)
	b.mu.Unlock()

	b.metrics.RecordGauge("refresh_subscribers", float64(count), nil)

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers, id)
			close(ch)
			count := len(b.subscribers)
			b.mu.Unlock()

			b.metrics.RecordGauge("refresh_subscribers", float64(count), nil)
		})
	}
}

// Publish never blocks
func (b *RefreshBroadcaster) Publish() {
	b.published.Add(1)

	b.mu.Lock()
	for _, ch := range b.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	b.mu.Unlock()

	b.metrics.IncrementCounter("refresh.published", nil)
}

func (b *RefreshBroadcaster) Published() uint64 {
	return b.published.Load()
}
