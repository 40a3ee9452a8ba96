package kxarena

import "unsafe"

// Allocator owns a doubly-linked list of arenas and serves allocations as
// contiguous runs of buckets within them. It is not safe for concurrent
// use; wrap it with the sibling syncalloc package for that.
type Allocator struct {
	bucketsPerArena   int
	defaultBucketSize uintptr
	flags             Flag

	acquire   PageAcquireFunc
	release   PageReleaseFunc
	gcTrigger GCTriggerFunc

	head, tail *arena
}

// New constructs an Allocator and synthesizes its first arena using the
// given page-acquire/page-release pair. Panics if acquire or release is
// nil, or if the initial arena cannot be created — a fresh Allocator with
// no usable memory has no useful zero value, unlike most Go types.
func New(acquire PageAcquireFunc, release PageReleaseFunc, opts ...Option) *Allocator {
	if acquire == nil || release == nil {
		panic("kxarena: acquire and release must both be non-nil")
	}

	al := &Allocator{
		bucketsPerArena:   DefaultBucketsPerArena,
		defaultBucketSize: DefaultBucketSize,
		acquire:           acquire,
		release:           release,
	}
	for _, opt := range opts {
		opt(al)
	}

	first := newArena(al.bucketsPerArena, al.defaultBucketSize, al.acquire)
	if first == nil {
		panic("kxarena: failed to acquire the initial arena")
	}
	al.pushTail(first)
	return al
}

// Close releases every arena the allocator owns. The allocator must not be
// used afterward. Safe to call more than once.
func (al *Allocator) Close() {
	for a := al.head; a != nil; {
		next := a.next
		a.destroy(al.release)
		a = next
	}
	al.head, al.tail = nil, nil
}

// Allocate returns a pointer to a contiguous run of buckets able to hold at
// least size bytes, or nil if no arena has room and growing the allocator
// still fails (PageAcquire returned nil). If a GCTrigger is configured and
// reports true, GC runs once before the allocation is attempted.
//
// Allocate(0) always returns nil: a zero-byte request would otherwise tag
// a whole bucket to a run the caller has no pointer to free.
func (al *Allocator) Allocate(size uintptr) unsafe.Pointer {
	if size == 0 {
		return nil
	}
	if al.gcTrigger != nil && al.gcTrigger(al) {
		al.GC()
	}
	return al.allocate(size)
}

// Free releases the allocation at p. It is a no-op returning nil if p is
// nil or not found in any arena; otherwise it returns p.
func (al *Allocator) Free(p unsafe.Pointer) unsafe.Pointer {
	if p == nil {
		return nil
	}
	target := uintptr(p)

	for a := al.head; a != nil; a = a.next {
		if a.used == 0 {
			continue
		}
		swept := 0
		for i, t := range a.tags {
			if t == target {
				a.tags[i] = 0
				swept++
			}
		}
		if swept == 0 {
			continue
		}
		a.used -= uintptr(swept) * a.bucketSize
		if al.flags.has(FlagZeroOnFree) {
			start := indexOfAddr(a, p)
			a.zeroRun(start, swept)
		}
		return p
	}
	return nil
}

// SetDefaultBucketSize changes the bucket size used by future standard
// arenas. Unlike GC, this reclamation pass is allowed to reclaim the head
// arena; if it does, a fresh head of the new default size is synthesized
// so the head != nil invariant holds afterward.
func (al *Allocator) SetDefaultBucketSize(size uintptr) {
	if size == 0 {
		return
	}
	al.defaultBucketSize = size
	al.reclaim(true)
}

// knowsPointer reports whether p is the base of a live allocation in some
// arena, without mutating anything.
func (al *Allocator) knowsPointer(p unsafe.Pointer) bool {
	target := uintptr(p)
	for a := al.head; a != nil; a = a.next {
		for _, t := range a.tags {
			if t == target {
				return true
			}
		}
	}
	return false
}

// indexOfAddr returns the bucket index of addr within a. addr must be a
// bucket-aligned address inside a's region.
func indexOfAddr(a *arena, addr unsafe.Pointer) int {
	return int((uintptr(addr) - uintptr(a.region)) / a.bucketSize)
}
