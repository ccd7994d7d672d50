// Copyright (C) 2026 The flatjson authors. All Rights Reserved.

// Package flatjson converts JSON documents into flat CSV tables.
//
// A document is either a single object or an array of objects; each object
// becomes one CSV row. Nested objects are flattened into dotted-path column
// keys, arrays of primitives are joined with semicolons, and arrays holding
// containers are stringified with {...} and [...] placeholders. The header
// row is the union of all keys across records in first-seen order, and
// records missing a key get an empty cell.
//
// # Parsing
//
// [Parse] is a single-pass recursive-descent parser over a fully loaded byte
// buffer. Numbers are validated against the JSON grammar but retained as
// verbatim slices of the input, so the original digit sequence survives into
// the output. Strings without escapes are returned as zero-copy slices of
// the input; escaped strings are decoded into a scratch buffer and copied
// once into the permanent arena. Syntax errors have concrete type
// [*SyntaxError] and abort the whole run; there is no error recovery.
//
// # Memory
//
// The pipeline allocates from two fixed-capacity bump allocators (package
// [github.com/advxolltm/flatjson/arena]) instead of the general heap: a
// permanent arena holding the value tree, the key set, and the header
// strings for the life of the run, and a scratch arena holding per-record
// flattening state, reset in O(1) after every record. Exceeding either
// capacity is fatal; arenas never grow.
//
// # Converting
//
// [Convert] runs the whole batch pipeline: parse once, flatten every record
// twice (once to collect headers, once to emit rows), write CSV:
//
//	err := flatjson.Convert(input, os.Stdout, nil)
//	if err != nil {
//	   log.Fatalf("Convert failed: %v", err)
//	}
package flatjson
