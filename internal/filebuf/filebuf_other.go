// Copyright (C) 2026 The flatjson authors. All Rights Reserved.

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package filebuf

import (
	"errors"
	"os"
)

var errNoMmap = errors.New("memory mapping not supported on this platform")

func mmapFile(f *os.File, size int) ([]byte, error) {
	return nil, errNoMmap
}

func munmap(data []byte) error { return nil }
