// Package kxarena implements a fixed-bucket, multi-arena memory allocator.
//
// # Overview
//
// Unlike a bump allocator, kxarena partitions every arena into a fixed
// number of equally sized buckets and serves each allocation as a
// contiguous run of buckets. This buys individual Free and in-place
// Reallocate at the cost of giving up O(1) reset: the allocator walks
// bucket occupancy tags to find free runs and to locate existing
// allocations. It is meant for long-running, latency-sensitive processes
// that want heap-like semantics without handing every allocation to the
// Go runtime's allocator and GC.
//
// # Basic usage
//
//	a := kxarena.New(kxarena.HeapPages.Acquire, kxarena.HeapPages.Release)
//	defer a.Close()
//
//	p := a.Allocate(200)
//	if p == nil {
//		// out of memory
//	}
//	a.Free(p)
//
// # Typed construction
//
//	type Node struct{ Value int }
//
//	n, err := kxarena.Construct[Node](a, func(n *Node) { n.Value = 42 })
//	if err == nil {
//		kxarena.Destroy(a, n)
//	}
//
// # Thread safety
//
// Allocator is not safe for concurrent use; see the sibling syncalloc
// package for a mutex-protected wrapper. The core never synchronizes,
// never logs, and never retries beyond the single grow-then-retry
// documented on Allocate.
//
// # Page sources
//
// Allocator does not know how to obtain raw memory. It is handed a
// PageAcquireFunc/PageReleaseFunc pair at construction — HeapPages backs
// arenas with ordinary Go-managed byte slices, and the sibling ospages
// package backs them with real OS pages via mmap/VirtualAlloc.
package kxarena
