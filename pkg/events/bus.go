package events

import (
	"context"
	"sync"
)

// Subscription receives messages published to a Bus.
type Subscription[T any] struct {
	ch     chan T
	closed bool
	mu     sync.Mutex
}

// C returns the receive channel. It is closed when the subscription closes.
func (s *Subscription[T]) C() <-chan T {
	return s.ch
}

// Close stops delivery and closes the receive channel. Idempotent.
func (s *Subscription[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		close(s.ch)
		s.closed = true
	}
}

// send delivers non-blocking; a full buffer drops the message.
func (s *Subscription[T]) send(msg T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- msg:
	default:
	}
}

// Bus fans messages out to all active subscriptions.
// Slow consumers lose messages instead of blocking Publish.
// All methods are safe for concurrent use.
type Bus[T any] struct {
	subs      map[*Subscription[T]]struct{}
	buffer    int
	closed    bool
	mu        sync.RWMutex
	cleanupWg sync.WaitGroup
}

// NewBus creates a bus whose subscriptions buffer up to buffer messages.
// A minimum buffer of 1 is enforced to keep sends non-blocking.
func NewBus[T any](buffer int) *Bus[T] {
	return &Bus[T]{
		subs:   make(map[*Subscription[T]]struct{}),
		buffer: max(buffer, 1),
	}
}

// Subscribe registers a new subscription. When ctx is cancelled the
// subscription is closed and removed. Subscribing to a closed bus returns an
// already-closed subscription.
func (b *Bus[T]) Subscribe(ctx context.Context) *Subscription[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &Subscription[T]{ch: make(chan T, b.buffer)}
	if b.closed {
		sub.Close()
		return sub
	}

	b.subs[sub] = struct{}{}

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			<-ctx.Done()
			b.unsubscribe(sub)
		}()
	}

	return sub
}

// Publish delivers msg to every active subscription, dropping it for any
// subscription whose buffer is full.
func (b *Bus[T]) Publish(msg T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}
	for sub := range b.subs {
		sub.send(msg)
	}
}

// Close shuts the bus down and closes every subscription. Idempotent.
func (b *Bus[T]) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	for sub := range b.subs {
		sub.Close()
	}
	clear(b.subs)
	b.mu.Unlock()

	b.cleanupWg.Wait()
}

func (b *Bus[T]) unsubscribe(sub *Subscription[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub]; ok {
		delete(b.subs, sub)
		sub.Close()
	}
}
