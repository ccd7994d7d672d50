// Copyright (C) 2026 The flatjson authors. All Rights Reserved.

package flatjson

import (
	"bufio"
	"io"
	"time"

	"github.com/advxolltm/flatjson/arena"

	"go.uber.org/zap"
)

// Default arena sizing, as a multiple of the input size plus fixed headroom.
// JSON text expands substantially once exploded into per-node overhead and
// flattened key strings, so the permanent arena is sized generously;
// undersizing is a fatal error in this design, not a slow path.
const (
	permFactor    = 16
	permHeadroom  = 64 << 20
	tmpFactor     = 2
	tmpHeadroom   = 32 << 20
	rowBufInitial = 1024
)

// Options configure a conversion. The zero value is ready to use.
type Options struct {
	// PermBytes is the capacity of the permanent arena holding the value
	// tree, the key set, and the header strings. If zero, the capacity is
	// sized from the input length.
	PermBytes int

	// ScratchBytes is the capacity of the scratch arena reset after each
	// per-record flatten. If zero, the capacity is sized from the input
	// length.
	ScratchBytes int

	// Logger receives debug diagnostics (record and column counts, arena
	// utilization, pass timings). If nil, diagnostics are discarded.
	Logger *zap.Logger
}

func (o *Options) permBytes(inputLen int) int {
	if o != nil && o.PermBytes > 0 {
		return o.PermBytes
	}
	return inputLen*permFactor + permHeadroom
}

func (o *Options) scratchBytes(inputLen int) int {
	if o != nil && o.ScratchBytes > 0 {
		return o.ScratchBytes
	}
	return inputLen*tmpFactor + tmpHeadroom
}

func (o *Options) logger() *zap.Logger {
	if o != nil && o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// Convert parses the JSON document in input and writes it to w as CSV: a
// header row holding the union of all flattened keys across records in
// first-seen order, then one row per record in document order, with missing
// keys rendered as empty cells.
//
// The whole input is processed as a batch: one parse pass building the value
// tree in a permanent arena, then two flattening passes over the records
// (key collection, then row emission), with the scratch arena reset after
// every record. Errors are of type [*SyntaxError] for malformed input and
// [*arena.OverflowError] when an arena capacity is exceeded. Failures before
// emission write nothing to w; a failure during emission can leave complete
// rows already written, but never a torn row.
func Convert(input []byte, w io.Writer, opts *Options) (err error) {
	defer func() {
		if v := recover(); v != nil {
			oerr, ok := v.(*arena.OverflowError)
			if !ok {
				panic(v)
			}
			err = oerr
		}
	}()

	log := opts.logger()
	perm := arena.New(opts.permBytes(len(input)))
	defer perm.Release()
	tmp := arena.New(opts.scratchBytes(len(input)))
	defer tmp.Release()

	start := time.Now()
	records, err := Parse(input, perm)
	if err != nil {
		return err
	}
	log.Debug("parsed document",
		zap.Int("input_bytes", len(input)),
		zap.Int("records", len(records)),
		zap.Duration("elapsed", time.Since(start)))

	// Pass 1: fold every record's keys into the header set.
	start = time.Now()
	f := NewFlattener(tmp)
	headers := NewKeySet(perm)
	for _, rec := range records {
		m := tmp.Mark()
		for _, kv := range f.Flatten(rec) {
			headers.Add(kv.Key)
		}
		tmp.Reset(m)
	}
	log.Debug("collected headers",
		zap.Int("columns", headers.Len()),
		zap.Duration("elapsed", time.Since(start)))

	// Pass 2: emit the header row and one row per record. Each row is
	// assembled in full before it is written, so a write failure cannot
	// leave a torn row behind.
	start = time.Now()
	bw := bufio.NewWriter(w)
	row := make([]byte, 0, rowBufInitial)
	if _, err := bw.Write(AppendCSVRow(row, headers.Keys())); err != nil {
		return err
	}
	for _, rec := range records {
		m := tmp.Mark()
		kvs := f.Flatten(rec)
		row = row[:0]
		for i, key := range headers.Keys() {
			if i > 0 {
				row = append(row, ',')
			}
			row = AppendCSVCell(row, RowValue(kvs, key))
		}
		row = append(row, '\n')
		if _, err := bw.Write(row); err != nil {
			return err
		}
		tmp.Reset(m)
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	log.Debug("emitted rows",
		zap.Int("rows", len(records)),
		zap.Float64("perm_utilization", perm.Utilization()),
		zap.Float64("scratch_utilization", tmp.Utilization()),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
