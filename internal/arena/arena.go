// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arena provides batched storage for byte strings that share
// the lifetime of a single owner, such as the names of one message type.
package arena

import "github.com/golang/protonames/internal/strs"

const (
	minChunkSize = 256
	maxChunkSize = 1 << 16
)

// Arena copies byte sequences into large, append-only chunks and hands out
// strings that reference them.
//
// Bytes written to a chunk are never modified afterwards. When a chunk has no
// room left, a new one is started and the old one stays alive for as long as
// any string referencing it does. Chunks are released together with the last
// reference to the arena or its strings; callers never free them.
//
// The zero value is an empty arena ready for use.
// An Arena is not safe for concurrent use.
type Arena struct {
	chunks [][]byte
	size   int
}

// Intern copies b into the arena and returns a string holding the copy.
// The caller may modify b after Intern returns.
func (a *Arena) Intern(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	c := a.reserve(len(b))
	start := len(*c)
	*c = append(*c, b...)
	a.size += len(b)
	return strs.UnsafeString((*c)[start:len(*c):len(*c)])
}

// InternString is equivalent to Intern([]byte(s)) without the
// intermediate conversion.
func (a *Arena) InternString(s string) string {
	if len(s) == 0 {
		return ""
	}
	c := a.reserve(len(s))
	start := len(*c)
	*c = append(*c, s...)
	a.size += len(s)
	return strs.UnsafeString((*c)[start:len(*c):len(*c)])
}

// Len reports the number of bytes interned so far.
func (a *Arena) Len() int { return a.size }

// Chunks reports the number of buffers owned by the arena.
func (a *Arena) Chunks() int { return len(a.chunks) }

// reserve returns a chunk with room for at least n more bytes.
func (a *Arena) reserve(n int) *[]byte {
	if k := len(a.chunks); k > 0 {
		if c := &a.chunks[k-1]; cap(*c)-len(*c) >= n {
			return c
		}
	}
	size := minChunkSize
	if k := len(a.chunks); k > 0 {
		size = 2 * cap(a.chunks[k-1])
	}
	if size > maxChunkSize {
		size = maxChunkSize
	}
	if size < n {
		size = n
	}
	a.chunks = append(a.chunks, make([]byte, 0, size))
	return &a.chunks[len(a.chunks)-1]
}
