// Copyright (C) 2026 The flatjson authors. All Rights Reserved.

package flatjson

import "go4.org/mem"

// AppendCSVCell appends cell to dst with minimal CSV quoting and returns the
// extended buffer. A cell is quoted only if it contains a comma, a double
// quote, a newline, or a carriage return; inside a quoted cell, embedded
// double quotes are doubled.
func AppendCSVCell(dst []byte, cell mem.RO) []byte {
	if !needsQuoting(cell) {
		return mem.Append(dst, cell)
	}
	dst = append(dst, '"')
	for i := 0; i < cell.Len(); i++ {
		b := cell.At(i)
		if b == '"' {
			dst = append(dst, '"')
		}
		dst = append(dst, b)
	}
	return append(dst, '"')
}

// AppendCSVRow appends the cells joined by commas and terminated by a
// newline.
func AppendCSVRow(dst []byte, cells []mem.RO) []byte {
	for i, c := range cells {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = AppendCSVCell(dst, c)
	}
	return append(dst, '\n')
}

func needsQuoting(cell mem.RO) bool {
	for i := 0; i < cell.Len(); i++ {
		switch cell.At(i) {
		case ',', '"', '\n', '\r':
			return true
		}
	}
	return false
}
