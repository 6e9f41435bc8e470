package broadcast

import (
	"context"
	"sync"
)

// Subscriber receives values published through a Broadcaster.
// Implementations must be safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the channel delivering published values. The channel
	// is closed when the subscriber or its broadcaster closes.
	Receive() <-chan T

	// Close stops delivery and closes the receive channel. Close is
	// idempotent.
	Close() error
}

// Broadcaster fans published values out to every active subscriber.
// Slow consumers must never block a publisher; implementations drop
// values instead.
type Broadcaster[T any] interface {
	// Subscribe registers a new subscriber. The subscription is cleaned up
	// automatically when ctx is cancelled.
	Subscribe(ctx context.Context) Subscriber[T]

	// Publish delivers v to all active subscribers, dropping it for any
	// whose buffer is full. Returns ErrClosed after Close.
	Publish(ctx context.Context, v T) error

	// Close shuts down the broadcaster and closes every subscriber.
	Close() error
}

type subscriber[T any] struct {
	ch     chan T
	closed bool
	mu     sync.RWMutex
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{ch: make(chan T, bufferSize)}
}

func (s *subscriber[T]) Receive() <-chan T {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send attempts a non-blocking delivery; false means the subscriber is
// closed or its buffer is full.
func (s *subscriber[T]) send(v T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- v:
		return true
	default:
		return false
	}
}
