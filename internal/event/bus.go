package event

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// DefaultBuffer is the per-subscriber channel depth.
const DefaultBuffer = 64

// Bus fans events out to subscribers. Emit never blocks: when a
// subscriber's buffer is full the event is dropped for that subscriber
// and counted.
type Bus struct {
	mu      sync.RWMutex
	subs    map[int]chan Event
	nextID  int
	dropped atomic.Int64
	logger  *zap.Logger
	buffer  int
}

// NewBus creates a bus with the default per-subscriber buffer.
//
// Precondition: logger must be non-nil.
func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		subs:   make(map[int]chan Event),
		logger: logger,
		buffer: DefaultBuffer,
	}
}

// Subscribe registers a new subscriber. The returned cancel function
// removes the subscription and closes the channel; it is safe to call
// more than once.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	ch := make(chan Event, b.buffer)
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Emit delivers ev to every subscriber, stamping At when unset.
func (b *Bus) Emit(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			b.dropped.Add(1)
			b.logger.Warn("event dropped: subscriber buffer full",
				zap.String("type", string(ev.Type)),
				zap.String("channel", ev.Channel),
			)
		}
	}
}

// Dropped returns how many events were dropped due to full buffers.
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}
