package kxarena

import (
	"testing"
	"unsafe"
)

// fillArenas allocates exactly n full arenas' worth of single-bucket
// allocations (n * DefaultBucketsPerArena calls of DefaultBucketSize each)
// and returns every pointer in allocation order.
func fillArenas(t *testing.T, al *Allocator, n int) []unsafe.Pointer {
	t.Helper()
	ptrs := make([]unsafe.Pointer, 0, n*DefaultBucketsPerArena)
	for i := 0; i < n*DefaultBucketsPerArena; i++ {
		p := al.Allocate(DefaultBucketSize)
		if p == nil {
			t.Fatalf("Allocate #%d = nil while filling %d arenas", i, n)
		}
		ptrs = append(ptrs, p)
	}
	return ptrs
}

// TestGCExcludesHead is boundary scenario S7: filling and then freeing
// enough to produce 3 arenas, GC reclaims the 2 trailing ones and leaves
// the head in place even though it too is empty.
func TestGCExcludesHead(t *testing.T) {
	al := newTestAllocator(t)

	ptrs := fillArenas(t, al, 3)
	if got := al.Stats().Arenas; got != 3 {
		t.Fatalf("Arenas after filling = %d, want 3", got)
	}

	for _, p := range ptrs {
		al.Free(p)
	}
	if got := al.Stats().EmptyArenas; got != 3 {
		t.Fatalf("EmptyArenas before GC = %d, want 3", got)
	}

	released := al.GC()
	if released != 2 {
		t.Fatalf("GC() = %d, want 2", released)
	}
	if got := al.Stats().Arenas; got != 1 {
		t.Fatalf("Arenas after GC = %d, want 1", got)
	}
	if al.head == nil {
		t.Fatal("head arena must survive GC even when empty")
	}
}

func TestGCIsNoOpWhenNothingEmpty(t *testing.T) {
	al := newTestAllocator(t)
	al.Allocate(32)
	if released := al.GC(); released != 0 {
		t.Fatalf("GC() = %d, want 0", released)
	}
}

// TestSetDefaultBucketSizeReclaimsHead exercises the include-head
// reclamation path: unlike GC, SetDefaultBucketSize is allowed to reclaim
// an empty head, and must resynthesize a fresh one in the new size so the
// allocator keeps working afterward.
func TestSetDefaultBucketSizeReclaimsHead(t *testing.T) {
	al := newTestAllocator(t)
	// head starts empty: no allocations yet.

	al.SetDefaultBucketSize(64)

	if al.head == nil {
		t.Fatal("head must never be nil after SetDefaultBucketSize")
	}
	if al.head.bucketSize != 64 {
		t.Fatalf("resynthesized head bucketSize = %d, want 64", al.head.bucketSize)
	}
	if got := al.Stats().Arenas; got != 1 {
		t.Fatalf("Arenas after reclaiming+resynthesizing head = %d, want 1", got)
	}

	p := al.Allocate(32)
	if p == nil {
		t.Fatal("allocator must remain usable after SetDefaultBucketSize reclaims the head")
	}
}

func TestSetDefaultBucketSizeKeepsNonEmptyHead(t *testing.T) {
	al := newTestAllocator(t)
	p := al.Allocate(32)

	al.SetDefaultBucketSize(64)

	if al.head == nil {
		t.Fatal("head must survive when it still holds a live allocation")
	}
	if al.head.bucketSize != 32 {
		t.Fatalf("existing head bucketSize changed to %d, want unchanged 32", al.head.bucketSize)
	}
	if al.Free(p) != p {
		t.Fatal("allocation made before SetDefaultBucketSize must still be freeable")
	}
}
