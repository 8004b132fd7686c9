// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protonames

import (
	"hash/maphash"
	"strings"
)

// NameKind reports where the bytes of a Name are stored.
type NameKind uint8

const (
	_ NameKind = iota

	// StaticName is a name provided as a string constant by generated code.
	// It is referenced in place and never copied.
	StaticName

	// InternedName is a name computed while building a Map
	// (e.g., a derived JSON name) and stored in the Map's arena.
	InternedName
)

func (k NameKind) String() string {
	switch k {
	case StaticName:
		return "static"
	case InternedName:
		return "interned"
	default:
		return "invalid"
	}
}

// Name is an immutable protobuf identifier owned by a Map.
// Names are only produced by a Map and remain valid for as long as it is used.
//
// The identity of a Name is its byte content: use Equal to compare names,
// since == also compares how the bytes are stored.
type Name struct {
	s    string
	kind NameKind
}

func staticName(s string) Name   { return Name{s: s, kind: StaticName} }
func internedName(s string) Name { return Name{s: s, kind: InternedName} }

// IsValid reports whether n was produced by a Map.
// The zero Name is invalid.
func (n Name) IsValid() bool { return n.kind != 0 }

// Kind reports how the bytes of n are stored.
func (n Name) Kind() NameKind { return n.kind }

// Len reports the length of n in bytes.
func (n Name) Len() int { return len(n.s) }

// String returns n as a string. It does not copy.
func (n Name) String() string { return n.s }

// AppendTo appends the bytes of n to b.
func (n Name) AppendTo(b []byte) []byte { return append(b, n.s...) }

// Equal reports whether n and m hold the same bytes.
func (n Name) Equal(m Name) bool {
	return n.EqualString(m.s)
}

// EqualBytes reports whether n holds exactly the bytes in b.
func (n Name) EqualBytes(b []byte) bool {
	if len(n.s) != len(b) {
		return false
	}
	for i := 0; i < len(b); i++ {
		if n.s[i] != b[i] {
			return false
		}
	}
	return true
}

// EqualString reports whether n holds exactly the bytes in s.
func (n Name) EqualString(s string) bool {
	if len(n.s) != len(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if n.s[i] != s[i] {
			return false
		}
	}
	return true
}

// Hash returns a hash of the bytes of n.
// Names that are Equal have the same hash for a given seed.
func (n Name) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, n.s)
}

// Compare orders names by their bytes, like strings.Compare.
func (n Name) Compare(m Name) int { return strings.Compare(n.s, m.s) }

// NamePair holds the names associated with a single number.
type NamePair struct {
	// Proto is the name used by the text format and the schema.
	Proto Name
	// JSON is the name used by the JSON format.
	// For enum values and fields without a distinct JSON name,
	// it holds the same bytes as Proto.
	JSON Name
}
