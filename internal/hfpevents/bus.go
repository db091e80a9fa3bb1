package hfpevents

import (
	"log/slog"
	"sync"

	"github.com/sebas/hfpagd/internal/hfp"
)

// Handler receives every event published on the Bus.
type Handler func(event any)

// Bus is a small fan-out broadcaster, grounded on the panic-isolated
// handler dispatch pattern of the teacher pack's event bus: each
// subscriber runs in its own goroutine, and a handler panic is
// recovered and logged rather than taking down the publisher.
type Bus struct {
	mu       sync.RWMutex
	handlers map[int]Handler
	nextID   int
	logger   *slog.Logger

	published uint64
	delivered uint64
}

// NewBus constructs an empty Bus.
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		handlers: make(map[int]Handler),
		logger:   logger,
	}
}

// Subscribe registers handler and returns a token usable with
// Unsubscribe.
func (b *Bus) Subscribe(h Handler) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = h
	return id
}

// Unsubscribe removes a previously registered handler.
func (b *Bus) Unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.handlers, id)
}

// Publish fans event out to every current subscriber.
func (b *Bus) Publish(event any) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	b.mu.Lock()
	b.published++
	b.mu.Unlock()

	for _, h := range handlers {
		go b.deliver(h, event)
	}
}

func (b *Bus) deliver(h Handler, event any) {
	defer func() {
		if r := recover(); r != nil {
			if b.logger != nil {
				b.logger.Error("hfpevents handler panicked", "panic", r)
			}
		}
	}()
	h(event)
	b.mu.Lock()
	b.delivered++
	b.mu.Unlock()
}

// Stats is a snapshot of bus counters, grounded on the teacher pack's
// BusStats accessor.
type Stats struct {
	Subscribers int
	Published   uint64
	Delivered   uint64
}

// Stats returns a snapshot of the bus's counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Stats{
		Subscribers: len(b.handlers),
		Published:   b.published,
		Delivered:   b.delivered,
	}
}

// publisherAdapter implements hfp.Publisher by building typed events
// with Builder and fanning them out on a Bus. Kept separate from Bus
// itself so Bus stays free of any hfp import and is reusable for other
// event shapes.
type publisherAdapter struct {
	bus     *Bus
	builder *Builder
}

// NewPublisher returns an hfp.Publisher backed by bus.
func NewPublisher(bus *Bus) hfp.Publisher {
	return &publisherAdapter{bus: bus, builder: NewBuilder()}
}

func (p *publisherAdapter) PublishConnectionState(peer string, delta hfp.ConnectionStateDelta) {
	p.bus.Publish(p.builder.ConnectionState(peer, delta.Previous.String(), delta.Current.String()))
}

func (p *publisherAdapter) PublishAudioState(peer string, delta hfp.AudioStateDelta) {
	p.bus.Publish(p.builder.AudioState(peer, delta.Previous.String(), delta.Current.String()))
}
