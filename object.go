package kxarena

import "unsafe"

// closer is the optional finalizer interface Destroy looks for on T. Types
// that need teardown before their storage is freed should implement it.
type closer interface {
	Close()
}

// Construct allocates sizeof(T) bytes, zeroes them unless
// FlagZeroOnAllocate already guarantees it, runs init in place, and
// returns the typed pointer. If init panics, the raw run is freed before
// the panic is re-raised, rather than leaving it tagged to a
// half-constructed value nothing can reach.
func Construct[T any](al *Allocator, init func(*T)) (*T, error) {
	var zero T
	size := unsafe.Sizeof(zero)

	raw := al.Allocate(size)
	if raw == nil {
		return nil, ErrOutOfMemory
	}
	if !al.flags.has(FlagZeroOnAllocate) {
		clear(unsafe.Slice((*byte)(raw), int(size)))
	}

	t := (*T)(raw)
	ok := false
	defer func() {
		if !ok {
			al.Free(raw)
		}
	}()
	init(t)
	ok = true
	return t, nil
}

// Destroy runs T's Close method if it implements one, then frees p's raw
// storage.
func Destroy[T any](al *Allocator, p *T) {
	if p == nil {
		return
	}
	if c, ok := any(p).(closer); ok {
		c.Close()
	}
	al.Free(unsafe.Pointer(p))
}
