// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protonames

import "fmt"

type namesKind uint8

const (
	_ namesKind = iota
	sameKind
	standardKind
	uniquePairKind
	aliasedKind
)

// Names declares the names of a single field or enum value.
// Generated code constructs it with Same, Standard, UniquePair, or Aliased;
// these four shapes and the JSON name derivation used by Standard
// are part of the contract with previously generated code.
type Names struct {
	kind    namesKind
	proto   string
	json    string
	aliases []string
}

// Same declares a name used as is by both the text and JSON formats.
func Same(name string) Names {
	return Names{kind: sameKind, proto: name}
}

// Standard declares a snake_case name whose JSON name is derived from it
// by dropping every underscore and upper-casing the byte that follows.
func Standard(name string) Names {
	return Names{kind: standardKind, proto: name}
}

// UniquePair declares a proto name and an independently chosen JSON name,
// as happens with the json_name field option.
func UniquePair(proto, json string) Names {
	return Names{kind: uniquePairKind, proto: proto, json: json}
}

// Aliased declares an enum value name along with the names of later values
// that share its number. Every alias resolves to the number,
// but the number always resolves to the canonical name.
func Aliased(canonical string, aliases ...string) Names {
	return Names{kind: aliasedKind, proto: canonical, aliases: aliases}
}

// Entry associates a field or enum value number with its names.
type Entry struct {
	Number int32
	Names  Names
}

func (n Names) String() string {
	switch n.kind {
	case sameKind:
		return fmt.Sprintf("Same(%q)", n.proto)
	case standardKind:
		return fmt.Sprintf("Standard(%q)", n.proto)
	case uniquePairKind:
		return fmt.Sprintf("UniquePair(%q, %q)", n.proto, n.json)
	case aliasedKind:
		return fmt.Sprintf("Aliased(%q, %q)", n.proto, n.aliases)
	default:
		return "Names(invalid)"
	}
}
