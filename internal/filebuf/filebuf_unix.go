// Copyright (C) 2026 The flatjson authors. All Rights Reserved.

//go:build linux || darwin || freebsd || netbsd || openbsd

package filebuf

import (
	"os"

	"golang.org/x/sys/unix"
)

func mmapFile(f *os.File, size int) ([]byte, error) {
	return unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_PRIVATE)
}

func munmap(data []byte) error {
	return unix.Munmap(data)
}
