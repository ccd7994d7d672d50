// Copyright (C) 2026 The flatjson authors. All Rights Reserved.

// Package filebuf loads whole files into memory, preferring a read-only
// memory mapping for larger files and falling back to a full read.
package filebuf

import (
	"fmt"
	"io"
	"os"
)

// mmapThreshold is the file size above which mapping is attempted. Tiny
// files are cheaper to read outright than to map and unmap.
const mmapThreshold = 4096

// A Buffer holds the complete contents of a file. When the buffer is backed
// by a memory mapping, Data remains valid only until Close; every slice
// derived from it must be dropped before then.
type Buffer struct {
	Data   []byte
	mapped bool
}

// Load reads or maps the file at path and returns its contents.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := st.Size()
	if size > int64(int(^uint(0)>>1)) {
		return nil, fmt.Errorf("file %q too large to load", path)
	}

	if size > mmapThreshold {
		if data, err := mmapFile(f, int(size)); err == nil {
			return &Buffer{Data: data, mapped: true}, nil
		}
		// Mapping failed; fall through to a plain read.
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return &Buffer{Data: data}, nil
}

// Close releases the buffer, unmapping it if it was memory-mapped. The
// buffer's contents must not be used after Close.
func (b *Buffer) Close() error {
	data, mapped := b.Data, b.mapped
	b.Data, b.mapped = nil, false
	if mapped {
		return munmap(data)
	}
	return nil
}
