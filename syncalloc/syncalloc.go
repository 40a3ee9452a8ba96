// Package syncalloc is a mutex-protected wrapper around kxarena.Allocator
// for embedders that share one allocator across goroutines. The core
// Allocator is deliberately single-threaded; this package adds a
// per-allocator mutex around each public operation for callers that need
// to share one across goroutines.
package syncalloc

import (
	"sync"
	"unsafe"

	"github.com/kxarena/kxarena"
	"github.com/kxarena/kxarena/kxobserve"
	"go.uber.org/zap"
)

// Allocator is a thread-safe wrapper around kxarena.Allocator. All
// operations take the same lock, so concurrent callers serialize on it —
// there is no finer-grained locking.
type Allocator struct {
	mu     sync.Mutex
	a      *kxarena.Allocator
	logger *zap.Logger
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithLogger attaches a zap.Logger used to record reclamation and
// out-of-memory events. Omit for silent operation.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Allocator) { s.logger = logger }
}

// New wraps a freshly constructed kxarena.Allocator. opts configure the
// wrapper itself (currently just WithLogger); pass kxarena options to
// kxarena.New before handing it the resulting allocator.
func New(a *kxarena.Allocator, opts ...Option) *Allocator {
	s := &Allocator{a: a, logger: kxobserve.NopLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Allocate thread-safely allocates size bytes.
func (s *Allocator) Allocate(size uintptr) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.a.Allocate(size)
	if p == nil {
		kxobserve.OutOfMemory(s.logger, size)
	}
	return p
}

// Reallocate thread-safely resizes the allocation at p.
func (s *Allocator) Reallocate(p unsafe.Pointer, size uintptr) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	np := s.a.Reallocate(p, size)
	if np == nil {
		kxobserve.OutOfMemory(s.logger, size)
	}
	return np
}

// Free thread-safely releases the allocation at p.
func (s *Allocator) Free(p unsafe.Pointer) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Free(p)
}

// GC thread-safely reclaims empty non-head arenas.
func (s *Allocator) GC() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	released := s.a.GC()
	kxobserve.ArenaReclaimed(s.logger, released)
	return released
}

// SetDefaultBucketSize thread-safely changes the default bucket size for
// future standard arenas.
func (s *Allocator) SetDefaultBucketSize(size uintptr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.SetDefaultBucketSize(size)
}

// Stats thread-safely snapshots the allocator's current usage.
func (s *Allocator) Stats() kxarena.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Stats()
}

// Close thread-safely releases every arena. The wrapper must not be used
// afterward.
func (s *Allocator) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Close()
}

// Construct thread-safely allocates and in-place constructs a T.
func Construct[T any](s *Allocator, init func(*T)) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return kxarena.Construct[T](s.a, init)
}

// Destroy thread-safely finalizes and frees a T built with Construct.
func Destroy[T any](s *Allocator, p *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kxarena.Destroy(s.a, p)
}
