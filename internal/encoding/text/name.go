// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text reads and writes the field names of messages
// in the proto text format.
package text

import (
	"bytes"
	"regexp"

	"github.com/golang/protonames/internal/errors"
	"github.com/golang/protonames/runtime/protonames"
)

// NameStatus reports how a field name was resolved.
type NameStatus uint8

const (
	// UnknownName is a well-formed name that no field declares.
	UnknownName NameStatus = iota
	// FieldName is the name (or an alias) of a declared field or enum value.
	FieldName
	// ReservedName is a name that the type reserves. Parsers skip its value.
	ReservedName
)

func (s NameStatus) String() string {
	switch s {
	case UnknownName:
		return "unknown"
	case FieldName:
		return "field"
	case ReservedName:
		return "reserved"
	default:
		return "<invalid>"
	}
}

type syntaxError struct{ error }

func newSyntaxError(f string, x ...interface{}) error {
	return syntaxError{errors.New(f, x...)}
}

var nameRegexp = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]*`)

// ResolveName reads the identifier at the start of in and looks it up
// among the proto names of m. It reports the number of bytes consumed,
// including any whitespace or comments after the identifier; the separator
// that follows (':' or a message delimiter) is left to the caller.
func ResolveName(m *protonames.Map, in []byte) (num int32, status NameStatus, n int, err error) {
	n = matchWithDelim(nameRegexp, in)
	if n == 0 {
		return 0, UnknownName, 0, newSyntaxError("invalid %q as identifier", errRegexp.Find(in))
	}
	name := in[:n]
	n += skipSpace(in[n:])
	if num, ok := m.NumberForProtoName(name); ok {
		return num, FieldName, n, nil
	}
	if m.IsReservedName(name) {
		return 0, ReservedName, n, nil
	}
	return 0, UnknownName, n, nil
}

// AppendName appends the proto name of p.
func AppendName(b []byte, p protonames.NamePair) []byte {
	return p.Proto.AppendTo(b)
}

// skipSpace returns the length of the whitespace and comments
// at the start of b.
func skipSpace(b []byte) int {
	in := b
	for len(in) > 0 {
		switch in[0] {
		case ' ', '\n', '\r', '\t':
			in = in[1:]
		case '#':
			if i := bytes.IndexByte(in, '\n'); i >= 0 {
				in = in[i+len("\n"):]
			} else {
				in = nil
			}
		default:
			return len(b) - len(in)
		}
	}
	return len(b)
}

// Any sequence that looks like a non-delimiter (for error reporting).
var errRegexp = regexp.MustCompile("^([-+._a-zA-Z0-9]{1,32}|.)")

// matchWithDelim matches r with the input b and verifies that the match
// terminates with a delimiter of some form (e.g., r"[^-+_.a-zA-Z0-9]").
// As a special case, EOF is considered a delimiter.
func matchWithDelim(r *regexp.Regexp, b []byte) int {
	n := len(r.Find(b))
	if n < len(b) {
		// Check that that the next character is a delimiter.
		c := b[n]
		notDelim := (c == '-' || c == '+' || c == '.' || c == '_' ||
			('a' <= c && c <= 'z') ||
			('A' <= c && c <= 'Z') ||
			('0' <= c && c <= '9'))
		if notDelim {
			return 0
		}
	}
	return n
}
