package syncalloc_test

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kxarena/kxarena"
	"github.com/kxarena/kxarena/syncalloc"
)

func newTestAllocator(t *testing.T) *syncalloc.Allocator {
	t.Helper()
	a := kxarena.New(kxarena.HeapPages.Acquire, kxarena.HeapPages.Release)
	s := syncalloc.New(a)
	t.Cleanup(s.Close)
	return s
}

func TestAllocateFree(t *testing.T) {
	t.Parallel()
	s := newTestAllocator(t)

	p := s.Allocate(32)
	require.NotNil(t, p)
	assert.Equal(t, uintptr(32), s.Stats().UsedBytes)

	assert.Equal(t, p, s.Free(p))
	assert.Equal(t, uintptr(0), s.Stats().UsedBytes)
}

func TestConcurrentAllocateFree(t *testing.T) {
	t.Parallel()
	s := newTestAllocator(t)

	const workers = 16
	const perWorker = 64

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				p := s.Allocate(32)
				require.NotNil(t, p)
				assert.Equal(t, p, s.Free(p))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uintptr(0), s.Stats().UsedBytes)
}

func TestGC(t *testing.T) {
	t.Parallel()
	s := newTestAllocator(t)

	ptrs := make([]unsafe.Pointer, 0, kxarena.DefaultBucketsPerArena*2)
	for i := 0; i < kxarena.DefaultBucketsPerArena*2; i++ {
		ptrs = append(ptrs, s.Allocate(kxarena.DefaultBucketSize))
	}
	for _, p := range ptrs {
		s.Free(p)
	}

	assert.Equal(t, 2, s.Stats().Arenas)
	assert.Equal(t, 1, s.GC())
	assert.Equal(t, 1, s.Stats().Arenas)
}

type destructible struct {
	closed *bool
}

func (d *destructible) Close() { *d.closed = true }

func TestConstructDestroy(t *testing.T) {
	t.Parallel()
	s := newTestAllocator(t)

	closed := false
	d, err := syncalloc.Construct[destructible](s, func(d *destructible) {
		d.closed = &closed
	})
	require.NoError(t, err)

	syncalloc.Destroy(s, d)
	assert.True(t, closed)
	assert.Equal(t, uintptr(0), s.Stats().UsedBytes)
}
