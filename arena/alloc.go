// Copyright (C) 2026 The flatjson authors. All Rights Reserved.

package arena

import "unsafe"

// NewOf allocates a zeroed T inside the arena and returns a pointer to it.
// The pointer is valid until the arena is Reset past this allocation or
// Released.
func NewOf[T any](a *Arena) *T {
	var zero T
	b := a.AllocZeroed(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// MakeSlice allocates a slice of n elements of type T inside the arena. The
// elements are zeroed.
func MakeSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	b := a.AllocZeroed(n*int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// Append appends vs to s, growing s inside the arena as needed. Growth
// allocates a fresh backing array and copies the old elements; the old array
// is abandoned until the next Reset, matching the arena's grow-by-copy
// contract. The input slice must itself be arena-backed or nil.
//
// If T contains pointers, the referenced memory must be kept reachable by
// other means (arena regions qualify while the arena is live): the arena's
// backing region is untyped and the garbage collector does not scan it.
func Append[T any](a *Arena, s []T, vs ...T) []T {
	need := len(s) + len(vs)
	if need > cap(s) {
		newcap := cap(s)
		if newcap == 0 {
			newcap = 8
		}
		for newcap < need {
			newcap *= 2
		}
		var zero T
		size, align := int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero))
		b := a.Alloc(newcap*size, align)
		grown := unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), newcap)
		copy(grown, s)
		s = grown[:len(s)]
	}
	return append(s, vs...)
}
