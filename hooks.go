package kxarena

import "unsafe"

// PageAcquireFunc requests a raw region of at least requestedBytes from the
// embedder. It may grant a larger region (e.g. rounded up to an OS page);
// grantedBytes reports the actual size, or 0 to mean "exactly requested".
// Returning a nil region signals failure.
type PageAcquireFunc func(requestedBytes uintptr) (region unsafe.Pointer, grantedBytes uintptr)

// PageReleaseFunc releases a region previously returned by a
// PageAcquireFunc. It is called exactly once per region.
type PageReleaseFunc func(region unsafe.Pointer)

// GCTriggerFunc is an optional predicate polled before each Allocate. When
// configured and it reports true, GC runs before the allocation proceeds.
type GCTriggerFunc func(a *Allocator) bool

// Flag is a configuration bit for an Allocator.
type Flag uint64

const (
	// FlagZeroOnAllocate zeroes bytes handed to the caller before Allocate
	// or Reallocate returns them.
	FlagZeroOnAllocate Flag = 1 << iota
	// FlagZeroOnFree zeroes bytes within a freed run before Free returns.
	FlagZeroOnFree
)

func (f Flag) has(bit Flag) bool { return f&bit != 0 }

// HeapPages is a PageAcquireFunc/PageReleaseFunc pair backed by ordinary
// Go-managed memory (make([]byte, n)). It never rounds up, so
// grantedBytes is always 0 ("exactly requested"). Suitable for tests and for
// embedders that don't need real OS pages; see the sibling ospages package
// for an mmap/VirtualAlloc-backed pair.
var HeapPages = struct {
	Acquire PageAcquireFunc
	Release PageReleaseFunc
}{
	Acquire: heapAcquire,
	Release: heapRelease,
}

func heapAcquire(requestedBytes uintptr) (unsafe.Pointer, uintptr) {
	if requestedBytes == 0 {
		return nil, 0
	}
	buf := make([]byte, requestedBytes)
	return unsafe.Pointer(&buf[0]), 0
}

// heapRelease is a no-op: the region's backing array is an ordinary
// Go-managed slice and is reclaimed by the garbage collector once the
// owning arena drops its last reference to the region pointer.
func heapRelease(unsafe.Pointer) {}
