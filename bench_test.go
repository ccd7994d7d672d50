// Copyright (C) 2026 The flatjson authors. All Rights Reserved.

package flatjson_test

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/advxolltm/flatjson"
	"github.com/advxolltm/flatjson/arena"
)

// benchDocument synthesizes an array of n records with nested objects,
// primitive arrays, and the occasional escaped string.
func benchDocument(n int) []byte {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, `{"id": %d, "name": "user-%d", "note": "line\nbreak",`+
			` "addr": {"city": "springfield", "zip": "%05d"}, "tags": [1, 2, %d]}`,
			i, i, i%99999, i)
	}
	sb.WriteByte(']')
	return []byte(sb.String())
}

func BenchmarkParse(b *testing.B) {
	input := benchDocument(1000)
	b.SetBytes(int64(len(input)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		perm := arena.New(len(input)*16 + (1 << 20))
		if _, err := flatjson.Parse(input, perm); err != nil {
			b.Fatal(err)
		}
		perm.Release()
	}
}

func BenchmarkConvert(b *testing.B) {
	for _, n := range []int{10, 1000} {
		b.Run(fmt.Sprintf("records-%d", n), func(b *testing.B) {
			input := benchDocument(n)
			opts := &flatjson.Options{
				PermBytes:    len(input)*16 + (1 << 20),
				ScratchBytes: len(input)*2 + (1 << 20),
			}
			b.SetBytes(int64(len(input)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if err := flatjson.Convert(input, io.Discard, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
