package kxarena

const (
	// DefaultBucketsPerArena is the number of buckets carved out of every
	// standard arena.
	DefaultBucketsPerArena = 128
	// DefaultBucketSize is the bucket size used by freshly created
	// standard arenas until changed with SetDefaultBucketSize.
	DefaultBucketSize uintptr = 32
)

// Option configures an Allocator at construction.
type Option func(*Allocator)

// WithBucketsPerArena sets the number of buckets per arena (the B shape
// constant). Only meaningful before the first arena is created; it has no
// effect after New returns. n <= 0 is ignored.
func WithBucketsPerArena(n int) Option {
	return func(al *Allocator) {
		if n > 0 {
			al.bucketsPerArena = n
		}
	}
}

// WithDefaultBucketSize sets the initial default bucket size (the S shape
// constant). size <= 0 is ignored.
func WithDefaultBucketSize(size uintptr) Option {
	return func(al *Allocator) {
		if size > 0 {
			al.defaultBucketSize = size
		}
	}
}

// WithFlags sets the zero-on-allocate/zero-on-free configuration flags.
func WithFlags(flags Flag) Option {
	return func(al *Allocator) { al.flags = flags }
}

// WithGCTrigger installs a predicate polled before each Allocate; when it
// returns true, GC runs before the allocation proceeds. Pass nil to
// disable (the default).
func WithGCTrigger(trigger GCTriggerFunc) Option {
	return func(al *Allocator) { al.gcTrigger = trigger }
}
