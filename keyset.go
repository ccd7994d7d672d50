// Copyright (C) 2026 The flatjson authors. All Rights Reserved.

package flatjson

import (
	"github.com/advxolltm/flatjson/arena"

	"go4.org/mem"
)

// A KeySet is a deduplicated, insertion-ordered collection of column keys.
// Insertion order is first-seen order, which is also the CSV column order.
//
// Keys are copied into the permanent arena when first added, so the set
// remains valid across scratch-arena resets. Membership is by content
// equality; both Contains and Add are linear scans, which for very wide
// schemas is the dominant cost of the pipeline.
type KeySet struct {
	perm *arena.Arena
	keys []mem.RO
}

// NewKeySet constructs an empty KeySet backed by the permanent arena perm.
func NewKeySet(perm *arena.Arena) *KeySet {
	return &KeySet{perm: perm}
}

// Add inserts key into the set if no equal key is already present. The
// inserted key is a permanent-arena copy, so the argument may be invalidated
// afterward.
func (s *KeySet) Add(key mem.RO) {
	if s.Contains(key) {
		return
	}
	s.keys = arena.Append(s.perm, s.keys, dupRO(s.perm, key))
}

// Contains reports whether the set holds a key with the same content as key.
func (s *KeySet) Contains(key mem.RO) bool {
	for _, k := range s.keys {
		if k.Equal(key) {
			return true
		}
	}
	return false
}

// Len reports the number of distinct keys in the set.
func (s *KeySet) Len() int { return len(s.keys) }

// Keys returns the keys in insertion order. The slice is shared with the
// set; callers must not modify it.
func (s *KeySet) Keys() []mem.RO { return s.keys }
