package event_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/kjohnstone/embervale/internal/event"
)

func TestBusDeliversToAllSubscribers(t *testing.T) {
	bus := event.NewBus(zaptest.NewLogger(t))

	ch1, cancel1 := bus.Subscribe()
	ch2, cancel2 := bus.Subscribe()
	defer cancel1()
	defer cancel2()

	bus.Emit(event.Event{Type: event.TypeSpawn, Channel: "#chan", Message: "a wolf appears"})

	for _, ch := range []<-chan event.Event{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, event.TypeSpawn, ev.Type)
			assert.Equal(t, "a wolf appears", ev.Message)
			assert.False(t, ev.At.IsZero())
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestBusEmitNeverBlocks(t *testing.T) {
	bus := event.NewBus(zaptest.NewLogger(t))
	_, cancel := bus.Subscribe()
	defer cancel()

	// Nothing drains the subscriber; emits past the buffer must drop,
	// not block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < event.DefaultBuffer+10; i++ {
			bus.Emit(event.Event{Type: event.TypeDrop, Message: "x"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Emit blocked on full subscriber")
	}
	assert.Equal(t, int64(10), bus.Dropped())
}

func TestBusCancelStopsDelivery(t *testing.T) {
	bus := event.NewBus(zaptest.NewLogger(t))
	ch, cancel := bus.Subscribe()
	cancel()
	cancel() // safe to call twice

	bus.Emit(event.Event{Type: event.TypeVictory})

	_, open := <-ch
	require.False(t, open)
}
