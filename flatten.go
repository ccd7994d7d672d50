// Copyright (C) 2026 The flatjson authors. All Rights Reserved.

package flatjson

import (
	"github.com/advxolltm/flatjson/arena"

	"go4.org/mem"
)

var (
	textNull  = mem.S("null")
	textTrue  = mem.S("true")
	textFalse = mem.S("false")
)

// A KV binds a flattened dotted-path key to its stringified cell value.
//
// Both slices are owned by the flattener's scratch arena (or alias memory
// that outlives it) and are invalidated by the next reset of that arena.
type KV struct {
	Key, Val mem.RO
}

// RowValue returns the value bound to key in kvs, or an empty slice if the
// key is absent. A missing key is an empty cell, never an error.
func RowValue(kvs []KV, key mem.RO) mem.RO {
	for _, kv := range kvs {
		if kv.Key.Equal(key) {
			return kv.Val
		}
	}
	return mem.RO{}
}

// A Flattener converts parsed record objects into flat key/value lists.
//
// All per-record output, the KV list itself, joined dotted keys, and the
// stringified forms of arrays, is allocated from the scratch arena supplied
// at construction. The caller is expected to Mark the arena before each
// Flatten call and Reset it afterward; the returned list is only valid until
// that reset.
type Flattener struct {
	tmp *arena.Arena
	buf []byte // reusable build buffer for keys and stringified values
}

// NewFlattener constructs a Flattener allocating from the scratch arena tmp.
func NewFlattener(tmp *arena.Arena) *Flattener {
	return &Flattener{tmp: tmp}
}

// Flatten converts the object value obj into an ordered list of dotted-path
// key/value pairs. Member order is preserved; nested objects contribute their
// members under dot-joined prefixes.
func (f *Flattener) Flatten(obj *Value) []KV {
	return f.flattenObject(obj, mem.RO{}, nil)
}

func (f *Flattener) flattenObject(obj *Value, prefix mem.RO, out []KV) []KV {
	for _, m := range obj.Members() {
		out = f.flattenValue(m.Value, f.joinKey(prefix, m.Key), out)
	}
	return out
}

func (f *Flattener) flattenValue(v *Value, key mem.RO, out []KV) []KV {
	switch v.Kind() {
	case Object:
		return f.flattenObject(v, key, out)
	case Array:
		if allPrimitives(v) {
			return arena.Append(f.tmp, out, KV{Key: key, Val: f.joinPrimitives(v)})
		}
		return arena.Append(f.tmp, out, KV{Key: key, Val: f.renderArray(v)})
	default:
		return arena.Append(f.tmp, out, KV{Key: key, Val: primitiveText(v)})
	}
}

// joinKey returns prefix + "." + key in the scratch arena. An empty prefix
// yields key itself; the slice already aliases stable memory, so no copy is
// needed.
func (f *Flattener) joinKey(prefix, key mem.RO) mem.RO {
	if prefix.Len() == 0 {
		return key
	}
	f.buf = mem.Append(f.buf[:0], prefix)
	f.buf = append(f.buf, '.')
	f.buf = mem.Append(f.buf, key)
	return mem.B(f.tmp.Copy(f.buf))
}

// joinPrimitives joins the primitive string forms of the elements of arr with
// ';' into a single scratch-arena value.
func (f *Flattener) joinPrimitives(arr *Value) mem.RO {
	f.buf = f.buf[:0]
	for i, el := range arr.Values() {
		if i > 0 {
			f.buf = append(f.buf, ';')
		}
		f.buf = mem.Append(f.buf, primitiveText(el))
	}
	return mem.B(f.tmp.Copy(f.buf))
}

// renderArray serializes arr to a compact JSON-like text form. Nested objects
// render as the literal placeholder {...} and nested arrays as [...]; the
// flattener never recurses into containers inside arrays.
func (f *Flattener) renderArray(arr *Value) mem.RO {
	f.buf = append(f.buf[:0], '[')
	for i, el := range arr.Values() {
		if i > 0 {
			f.buf = append(f.buf, ',')
		}
		switch el.Kind() {
		case Object:
			f.buf = append(f.buf, "{...}"...)
		case Array:
			f.buf = append(f.buf, "[...]"...)
		case String:
			f.buf = append(f.buf, '"')
			f.buf = mem.Append(f.buf, el.Text())
			f.buf = append(f.buf, '"')
		default:
			f.buf = mem.Append(f.buf, primitiveText(el))
		}
	}
	f.buf = append(f.buf, ']')
	return mem.B(f.tmp.Copy(f.buf))
}

// primitiveText returns the cell text of a primitive value: the JSON keyword
// for null and booleans, the verbatim digit sequence for numbers, and the
// decoded content for strings.
func primitiveText(v *Value) mem.RO {
	switch v.Kind() {
	case Null:
		return textNull
	case Bool:
		if v.Bool() {
			return textTrue
		}
		return textFalse
	default:
		return v.Text()
	}
}

func allPrimitives(arr *Value) bool {
	for _, el := range arr.Values() {
		if k := el.Kind(); k == Array || k == Object {
			return false
		}
	}
	return true
}
