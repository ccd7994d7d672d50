// Copyright (C) 2026 The flatjson authors. All Rights Reserved.

package flatjson

import (
	"github.com/advxolltm/flatjson/arena"

	"go4.org/mem"
)

// A Kind identifies the variant stored in a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	Null   Kind = iota // the null constant
	Bool               // true or false
	Number             // a number, kept as its verbatim source text
	String             // a string, kept as its decoded content
	Array              // an ordered sequence of values
	Object             // an ordered sequence of key/value members
)

var kindStr = [...]string{
	Null:   "null",
	Bool:   "bool",
	Number: "number",
	String: "string",
	Array:  "array",
	Object: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// A Member is a single key/value pair belonging to an object. Member order is
// the source order, and duplicate keys are preserved as separate members.
type Member struct {
	Key   mem.RO
	Value *Value
}

// A Value is a JSON value. Every Value produced by the parser, along with the
// backing arrays of its members and elements, is allocated from the permanent
// arena and lives exactly as long as it; individual values are never freed.
type Value struct {
	kind Kind
	boo  bool
	text mem.RO   // Number: verbatim digits; String: decoded content
	vals []*Value // Array elements
	mems []Member // Object members
}

// Kind reports which variant v holds.
func (v *Value) Kind() Kind { return v.kind }

// Bool returns the truth value of a Bool. It is false for any other kind.
func (v *Value) Bool() bool { return v.boo }

// Text returns the text of a Number or String: for numbers the verbatim digit
// sequence from the source, for strings the decoded content. For other kinds
// it returns an empty slice.
func (v *Value) Text() mem.RO { return v.text }

// Values returns the elements of an Array, nil for any other kind.
func (v *Value) Values() []*Value { return v.vals }

// Members returns the members of an Object, nil for any other kind.
func (v *Value) Members() []Member { return v.mems }

// Find returns the first member of an Object value with the given key, or nil
// if no such member exists.
func (v *Value) Find(key string) *Member {
	for i, m := range v.mems {
		if m.Key.EqualString(key) {
			return &v.mems[i]
		}
	}
	return nil
}

func newValue(a *arena.Arena, kind Kind) *Value {
	v := arena.NewOf[Value](a)
	v.kind = kind
	return v
}

func (v *Value) pushElem(a *arena.Arena, item *Value) {
	v.vals = arena.Append(a, v.vals, item)
}

func (v *Value) pushMember(a *arena.Arena, key mem.RO, val *Value) {
	v.mems = arena.Append(a, v.mems, Member{Key: key, Value: val})
}

// dupRO copies the contents of s into a and returns a view of the copy.
func dupRO(a *arena.Arena, s mem.RO) mem.RO {
	buf := a.Alloc(s.Len(), 1)
	return mem.B(mem.Append(buf[:0], s))
}
