// Package ospages provides an OS-page-backed PageAcquireFunc/
// PageReleaseFunc pair for kxarena.Allocator, for embedders that want
// arenas backed by real mmap/VirtualAlloc regions instead of ordinary
// Go-managed memory (kxarena.HeapPages). Grounded on the unix/windows
// split in tangzhangming-nova's internal/jit mmap helpers, rewritten
// against golang.org/x/sys instead of raw syscalls.
package ospages

import "unsafe"

// Acquire requests requestedBytes rounded up to a whole number of OS
// pages, and reports the rounded size as grantedBytes — which is exactly
// the over-allocation path kxarena.Allocator's arenas turn into larger
// buckets (see the repository's SPEC_FULL.md §4.1/§D.2).
func Acquire(requestedBytes uintptr) (region unsafe.Pointer, grantedBytes uintptr) {
	return acquirePages(requestedBytes)
}

// Release releases a region previously returned by Acquire.
func Release(region unsafe.Pointer) {
	releasePages(region)
}

// pageRound rounds n up to the next multiple of pageSize.
func pageRound(n, pageSize uintptr) uintptr {
	if pageSize == 0 {
		return n
	}
	return (n + pageSize - 1) &^ (pageSize - 1)
}
