package cache

import (
	"context"
	"sync"
	"time"
)

const (
	defaultMemoryTTL   = time.Hour
	defaultSweepPeriod = time.Minute
)

// item is one stored value. A zero deadline means the value never expires.
type item[V any] struct {
	deadline time.Time
	value    V
}

func (it item[V]) expired(now time.Time) bool {
	return !it.deadline.IsZero() && now.After(it.deadline)
}

// Memory keeps entries in a process-local map guarded by a mutex. Expired
// entries are dropped on read and swept in bulk by a background goroutine.
// Suited to a single process; reach for Redis when several processes need
// to see the same entries.
type Memory[V any] struct {
	mu     sync.Mutex
	data   map[string]item[V]
	ttl    time.Duration
	done   chan struct{}
	closed bool
}

// MemoryOption tunes a Memory cache at construction time.
type MemoryOption func(*memorySettings)

type memorySettings struct {
	ttl        time.Duration
	sweepEvery time.Duration
}

// WithDefaultTTL replaces the TTL applied when Set is called with zero.
// The initial default is one hour.
func WithDefaultTTL(d time.Duration) MemoryOption {
	return func(s *memorySettings) {
		s.ttl = d
	}
}

// WithCleanupInterval replaces how often the background sweep runs.
// The initial default is one minute; zero or less disables the sweep and
// leaves expiry entirely to reads.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(s *memorySettings) {
		s.sweepEvery = d
	}
}

// NewMemory builds an in-process cache. Close it when done so the sweep
// goroutine stops.
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	s := memorySettings{ttl: defaultMemoryTTL, sweepEvery: defaultSweepPeriod}
	for _, opt := range opts {
		opt(&s)
	}

	m := &Memory[V]{
		data: make(map[string]item[V]),
		ttl:  s.ttl,
		done: make(chan struct{}),
	}

	if s.sweepEvery > 0 {
		go m.sweep(s.sweepEvery)
	}

	return m
}

// Get returns the value stored under key. An expired entry is removed on
// the spot and reported as ErrNotFound.
func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	it, ok := m.data[key]
	if !ok || it.expired(time.Now()) {
		if ok {
			delete(m.data, key)
		}
		var zero V
		return zero, ErrNotFound
	}

	return it.value, nil
}

// Set stores value under key. A zero ttl applies the configured default;
// a negative ttl stores the value without a deadline.
func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if ttl == 0 {
		ttl = m.ttl
	}

	it := item[V]{value: value}
	if ttl > 0 {
		it.deadline = time.Now().Add(ttl)
	}

	m.data[key] = it
	return nil
}

// Delete removes key if present.
func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	delete(m.data, key)
	return nil
}

// Close stops the background sweep. Calling it again is harmless, but any
// Set or Delete after the first Close returns ErrClosed.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		m.closed = true
		close(m.done)
	}

	return nil
}

func (m *Memory[V]) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case now := <-ticker.C:
			m.dropExpired(now)
		}
	}
}

func (m *Memory[V]) dropExpired(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, it := range m.data {
		if it.expired(now) {
			delete(m.data, key)
		}
	}
}

var _ Cache[any] = (*Memory[any])(nil)
