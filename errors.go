package kxarena

import (
	"errors"
	"unsafe"

	sberr "github.com/barbell-math/smoothbrain-errs"
)

var (
	// ErrOutOfMemory is returned (wrapped) by the checked API when
	// PageAcquire fails on growth, or the post-growth retry still cannot
	// place the allocation.
	ErrOutOfMemory = errors.New("kxarena: out of memory")

	// ErrUnknownPointer is returned (wrapped) by ReallocateChecked when the
	// pointer is not found in any arena.
	ErrUnknownPointer = errors.New("kxarena: unknown pointer")

	// ErrZeroSizeRequest is returned unwrapped by AllocateChecked for a
	// zero-byte request; see Allocate's doc comment.
	ErrZeroSizeRequest = errors.New("kxarena: zero-size allocation request")
)

// AllocateChecked is Allocate, but reports failure as a wrapped error
// instead of a bare nil, for callers that prefer the error idiom over
// inspecting the returned pointer.
func (al *Allocator) AllocateChecked(size uintptr) (unsafe.Pointer, error) {
	if size == 0 {
		return nil, ErrZeroSizeRequest
	}
	p := al.Allocate(size)
	if p == nil {
		return nil, sberr.Wrap(ErrOutOfMemory, "requested %d bytes", size)
	}
	return p, nil
}

// ReallocateChecked is Reallocate, but distinguishes "unknown pointer" from
// "out of memory" instead of collapsing both to nil.
func (al *Allocator) ReallocateChecked(p unsafe.Pointer, size uintptr) (unsafe.Pointer, error) {
	if p == nil {
		np, err := al.AllocateChecked(size)
		return np, err
	}
	if !al.knowsPointer(p) {
		return nil, sberr.Wrap(ErrUnknownPointer, "pointer %p not found in any arena", p)
	}
	np := al.Reallocate(p, size)
	if np == nil {
		return nil, sberr.Wrap(ErrOutOfMemory, "requested %d bytes", size)
	}
	return np, nil
}
