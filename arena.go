package kxarena

import "unsafe"

// arena is a contiguous byte region partitioned into bucketsPerArena equally
// sized buckets. It tracks per-bucket occupancy with an address-tagged
// array: 0 means free, any other value is the base address of the
// allocation that owns the bucket (every bucket belonging to one
// allocation carries the same tag).
//
// The sibling links, size counters, and tag array live in this ordinary
// garbage-collected struct rather than being carved out of the raw
// acquired region, so an arena's metadata needs no header bytes set aside
// inside the region itself.
type arena struct {
	prev, next *arena

	region     unsafe.Pointer // as returned by acquire; passed back to release verbatim
	bucketSize uintptr        // bytes per bucket, uniform within this arena
	capacity   uintptr        // bucketsPerArena * bucketSize
	used       uintptr        // sum of bucketSize over occupied buckets

	tags []uintptr // length bucketsPerArena; 0 = free, else owning allocation's base address
}

// newArena requests bucketsPerArena*bucketSize bytes from acquire. If the
// granted size exceeds the request, the arena's bucketSize is raised so the
// extra bytes are exposed as larger buckets rather than wasted. Returns
// nil if acquire fails.
func newArena(bucketsPerArena int, bucketSize uintptr, acquire PageAcquireFunc) *arena {
	requested := uintptr(bucketsPerArena) * bucketSize
	region, granted := acquire(requested)
	if region == nil {
		return nil
	}
	if granted != 0 && granted != requested {
		bucketSize = granted / uintptr(bucketsPerArena)
	}
	return &arena{
		region:     region,
		bucketSize: bucketSize,
		capacity:   bucketSize * uintptr(bucketsPerArena),
		tags:       make([]uintptr, bucketsPerArena),
	}
}

// destroy releases the arena's region via release. Called exactly once per
// arena, from GC or Allocator.Close.
func (a *arena) destroy(release PageReleaseFunc) {
	release(a.region)
}

// isEmpty reports whether every bucket in the arena is free.
func (a *arena) isEmpty() bool {
	return a.used == 0
}

// bucketAddr returns the address of the first byte of bucket i.
func (a *arena) bucketAddr(i int) unsafe.Pointer {
	return unsafe.Add(a.region, uintptr(i)*a.bucketSize)
}

// zeroRun zeroes the byte range covered by buckets [start, start+count).
func (a *arena) zeroRun(start, count int) {
	offset := uintptr(start) * a.bucketSize
	length := uintptr(count) * a.bucketSize
	clear(unsafe.Slice((*byte)(unsafe.Add(a.region, offset)), int(length)))
}
