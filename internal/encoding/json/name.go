// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package json reads and writes the member names of JSON objects
// that encode protobuf messages.
package json

import (
	"io"

	"github.com/golang/protonames/runtime/protonames"
)

// ResolveName reads the object member name at the start of in, along with
// the colon that follows it, and looks it up in m. Both the JSON name and the
// proto name of a field are accepted. It reports the number of bytes consumed,
// including any whitespace around the colon.
//
// Names without escape sequences are looked up in place; names with escape
// sequences are unescaped into a single new string first.
func ResolveName(m *protonames.Map, in []byte) (num int32, ok bool, n int, err error) {
	name, escaped, n, err := readName(in)
	if err != nil {
		return 0, false, 0, err
	}
	if escaped {
		num, ok = m.NumberForJSONString(string(name))
	} else {
		num, ok = m.NumberForJSONName(name)
	}
	return num, ok, n, nil
}

// AppendName appends the JSON name of p as an object member name,
// followed by a colon.
func AppendName(b []byte, p protonames.NamePair) []byte {
	b = appendString(b, p.JSON.String())
	return append(b, ':')
}

func readName(in []byte) (name []byte, escaped bool, n int, err error) {
	name, escaped, n, err = parseString(in)
	if err != nil {
		return nil, false, 0, err
	}
	n += skipSpace(in[n:])
	if n == len(in) {
		return nil, false, 0, io.ErrUnexpectedEOF
	}
	if in[n] != ':' {
		return nil, false, 0, newSyntaxError("invalid character %q, expected ':' after object name", in[n])
	}
	n++
	n += skipSpace(in[n:])
	return name, escaped, n, nil
}

// skipSpace returns the length of the whitespace at the start of b.
func skipSpace(b []byte) int {
	for i, c := range b {
		switch c {
		case ' ', '\n', '\r', '\t':
		default:
			return i
		}
	}
	return len(b)
}
