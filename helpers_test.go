package kxarena

import "unsafe"

// uintptrPtr stores an unsafe.Pointer in a non-pointer-shaped wrapper so
// slices of them don't confuse `go vet`'s unsafeptr checks in test code
// that merely wants to keep addresses around for comparison.
type uintptrPtr struct {
	p unsafe.Pointer
}

// bytesAt views n bytes starting at p, for test assertions only.
func bytesAt(p unsafe.Pointer, n int) []byte {
	return unsafe.Slice((*byte)(p), n)
}
