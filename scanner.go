package kxarena

import "unsafe"

// allocate implements the bucket scanner's allocation path: walk arenas in
// list order, within each arena walk tags maintaining an
// open free run, and take the first run of sufficient size. Growing the
// allocator happens at most once per call.
func (al *Allocator) allocate(size uintptr) unsafe.Pointer {
	if p := al.scanForRun(size); p != nil {
		return p
	}

	a := newArena(al.bucketsPerArena, al.growthBucketSize(size), al.acquire)
	if a == nil {
		return nil
	}
	al.pushTail(a)
	return al.scanForRun(size)
}

// growthBucketSize picks the bucket size for a newly grown arena: the
// standard default when size fits within B standard buckets, otherwise a
// bucket size sized so B buckets cover size, rounded up to a multiple of 64.
func (al *Allocator) growthBucketSize(size uintptr) uintptr {
	if size <= al.defaultBucketSize*uintptr(al.bucketsPerArena) {
		return al.defaultBucketSize
	}
	return oversizeBucketSize(size, al.bucketsPerArena)
}

// scanForRun looks for a contiguous free run of >= size bytes across every
// arena in list order, tags it on the owning allocation's behalf, and
// returns its base address. Returns nil if no arena currently has room.
func (al *Allocator) scanForRun(size uintptr) unsafe.Pointer {
	for a := al.head; a != nil; a = a.next {
		if a.capacity-a.used < size {
			continue
		}

		start := -1
		var runBytes uintptr
		for i, t := range a.tags {
			if t == 0 {
				if start == -1 {
					start = i
				}
				runBytes += a.bucketSize
			} else {
				start = -1
				runBytes = 0
			}

			if runBytes >= size {
				count := i - start + 1
				base := a.bucketAddr(start)
				tag := uintptr(base)
				for j := start; j <= i; j++ {
					a.tags[j] = tag
				}
				a.used += runBytes
				if al.flags.has(FlagZeroOnAllocate) {
					a.zeroRun(start, count)
				}
				return base
			}
		}
	}
	return nil
}

// Reallocate resizes the allocation at p to size bytes. If the run can be
// extended in place within the same arena it still owns, p is returned
// unchanged. Otherwise a fresh allocation is made, min(oldSize, size)
// bytes are copied over, and p is freed. Returns nil if p is not found in
// any arena (an unknown pointer is a caller error) or if
// relocation is needed but allocation fails.
func (al *Allocator) Reallocate(p unsafe.Pointer, size uintptr) unsafe.Pointer {
	if p == nil {
		return al.Allocate(size)
	}

	target := uintptr(p)
	for a := al.head; a != nil; a = a.next {
		start, count, found := locateRun(a, target)
		if !found {
			continue
		}

		curBytes := uintptr(count) * a.bucketSize
		if curBytes >= size {
			return p
		}

		extended, newCount := extendRun(a, start, count, size)
		if extended {
			added := newCount - count
			addedBytes := uintptr(added) * a.bucketSize
			a.used += addedBytes
			if al.flags.has(FlagZeroOnAllocate) {
				a.zeroRun(start+count, added)
			}
			return p
		}

		// Found but can't extend: relocate without consulting further
		// arenas, even if a later arena could host it without copying.
		newPtr := al.allocate(size)
		if newPtr == nil {
			return nil
		}
		copy(unsafe.Slice((*byte)(newPtr), int(curBytes)), unsafe.Slice((*byte)(p), int(curBytes)))
		al.Free(p)
		return newPtr
	}
	return nil
}

// locateRun finds the contiguous run of tags equal to target within a,
// returning its start index and bucket count.
func locateRun(a *arena, target uintptr) (start, count int, found bool) {
	start = -1
	for i, t := range a.tags {
		if t == target {
			if start == -1 {
				start = i
			}
			count++
		} else if start != -1 {
			break
		}
	}
	return start, count, start != -1
}

// extendRun consumes forward free buckets immediately after [start,
// start+count) until the run reaches >= size bytes or the next bucket is
// occupied. Reports whether the target size was reached, and the new
// bucket count (unchanged if extension failed).
func extendRun(a *arena, start, count int, size uintptr) (bool, int) {
	total := uintptr(count) * a.bucketSize
	i := start + count
	for total < size && i < len(a.tags) && a.tags[i] == 0 {
		total += a.bucketSize
		i++
	}
	newCount := i - start
	if total >= size {
		tag := a.tags[start]
		for j := start + count; j < i; j++ {
			a.tags[j] = tag
		}
		return true, newCount
	}
	return false, count
}
