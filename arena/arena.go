// Copyright (C) 2026 The flatjson authors. All Rights Reserved.

// Package arena implements a fixed-capacity bump allocator (memory arena).
//
// An Arena owns a single pre-sized byte region and serves allocations by
// advancing an offset. Individual allocations are never freed; reclamation
// happens only in bulk, either for a suffix of the region via Mark and Reset,
// or for the whole region via Release. This makes per-allocation cost an
// aligned pointer bump and bulk cleanup O(1).
//
// An Arena never grows. If an allocation does not fit in the remaining
// capacity, the arena panics with an *OverflowError; callers that need a
// recoverable failure should recover the error at an appropriate boundary.
//
// An Arena is not safe for concurrent use. Memory handed out by an arena is
// only valid while the arena itself remains reachable and has not been Reset
// past the allocation or Released.
package arena

import "fmt"

// A Mark is an opaque snapshot of an arena's allocation offset, obtained from
// [Arena.Mark] and consumed by [Arena.Reset].
type Mark int

// An Arena is a bump allocator over a fixed-size byte region.
type Arena struct {
	buf []byte
	off int
}

// New constructs an arena with the given fixed capacity in bytes.
func New(capacity int) *Arena {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena{buf: make([]byte, capacity)}
}

// Alloc returns a slice of n bytes carved from the arena, its start aligned
// to align, which must be a power of two. The contents of the slice are
// unspecified: the region may contain residue from allocations discarded by a
// prior Reset. Alloc panics with an *OverflowError if the request does not
// fit in the remaining capacity.
func (a *Arena) Alloc(n, align int) []byte {
	off := alignUp(a.off, align)
	if off+n > len(a.buf) {
		panic(&OverflowError{Size: n, Used: a.off, Cap: len(a.buf)})
	}
	p := a.buf[off : off+n : off+n]
	a.off = off + n
	return p
}

// AllocZeroed is Alloc followed by clearing the returned bytes.
func (a *Arena) AllocZeroed(n, align int) []byte {
	p := a.Alloc(n, align)
	clear(p)
	return p
}

// Copy duplicates data into the arena and returns the copy.
func (a *Arena) Copy(data []byte) []byte {
	p := a.Alloc(len(data), 1)
	copy(p, data)
	return p
}

// Grow allocates fresh space of newSize bytes, copies min(len(old), newSize)
// bytes from old into it, and returns the new slice. The old region is not
// reclaimed; it remains dead weight in the arena until the next Reset or
// Release. This replaces reallocation for arena-backed growable sequences.
func (a *Arena) Grow(old []byte, newSize, align int) []byte {
	p := a.Alloc(newSize, align)
	copy(p, old)
	return p
}

// Mark returns a snapshot of the current allocation offset.
func (a *Arena) Mark() Mark { return Mark(a.off) }

// Reset rewinds the allocation offset to m, invalidating every allocation
// made after the corresponding call to [Arena.Mark]. Reset does not clear
// the reclaimed bytes.
func (a *Arena) Reset(m Mark) {
	if int(m) < 0 || int(m) > a.off {
		panic("arena: reset to invalid mark")
	}
	a.off = int(m)
}

// Release drops the backing region and makes the arena unusable. Any further
// allocation panics.
func (a *Arena) Release() {
	a.buf = nil
	a.off = 0
}

// Used reports the number of bytes currently allocated, including padding
// introduced for alignment.
func (a *Arena) Used() int { return a.off }

// Cap reports the total capacity of the arena in bytes.
func (a *Arena) Cap() int { return len(a.buf) }

// Utilization reports the ratio of bytes in use to capacity, 0 to 1.
func (a *Arena) Utilization() float64 {
	if len(a.buf) == 0 {
		return 0
	}
	return float64(a.off) / float64(len(a.buf))
}

func alignUp(x, align int) int { return (x + align - 1) &^ (align - 1) }

// An OverflowError reports an allocation that exceeded an arena's fixed
// capacity. Arena methods panic with this error; there is no retry and no
// fallback allocation path.
type OverflowError struct {
	Size int // size of the failed request in bytes
	Used int // bytes already allocated
	Cap  int // total arena capacity
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("arena: allocation of %d bytes exceeds capacity (%d of %d bytes used)",
		e.Size, e.Used, e.Cap)
}
