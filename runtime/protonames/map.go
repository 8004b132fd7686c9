// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package protonames resolves the names of fields and enum values to their
// numbers and back, for use by the text and JSON codecs.
//
// Generated code declares the names of each message and enum once:
//
//	var fooNames = protonames.Lazy{Build: func() *protonames.Map {
//		return protonames.New([]protonames.Entry{
//			{Number: 1, Names: protonames.Standard("foo_bar")},
//			{Number: 2, Names: protonames.UniquePair("baz", "BAZ")},
//		}, []string{"old_name"}, [][2]int64{{10, 20}})
//	}}
//
// A Map never changes after it is built, so lookups may be issued from any
// number of goroutines without synchronization. Lookups taking a []byte only
// read it for the duration of the call and never retain it.
package protonames

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/golang/protonames/internal/arena"
	"github.com/golang/protonames/internal/errors"
	"github.com/golang/protonames/internal/flags"
	"github.com/golang/protonames/internal/set"
	"github.com/golang/protonames/internal/strs"
)

// Map is the name table of a single message or enum type.
type Map struct {
	arena arena.Arena // owns every InternedName

	numbers  []int32 // in declaration order
	byNumber map[int32]NamePair
	byProto  map[string]int32 // proto names and aliases
	byJSON   map[string]int32 // JSON names, plus every key of byProto

	reservedNames  set.Strings
	reservedRanges numberRanges
}

// New builds a Map from the entries of a message or enum type along with its
// reserved names and its reserved number ranges, where each range is
// half-open: start inclusive, end exclusive. Range ends are 64-bit so that
// a range may extend through math.MaxInt32.
//
// It panics if the declarations are malformed (see Build).
// It is intended to be called from generated code.
func New(entries []Entry, reservedNames []string, reservedRanges [][2]int64) *Map {
	m, err := Build(entries, reservedNames, reservedRanges)
	if err != nil {
		panic(err)
	}
	return m
}

// Build builds a Map like New, but reports malformed declarations as an error.
//
// Declarations are malformed if a number is declared twice, a name is empty,
// a proto name or alias is declared by two different numbers, a name or
// number is also reserved, or a range is empty.
// When built with the "protolegacy" tag, collisions are tolerated instead
// and the entry declared last takes precedence.
//
// Clashes in the JSON namespace are not errors, since proto2 permits them.
// A JSON name takes precedence over a proto name or alias spelled the same,
// and otherwise the entry declared first keeps the name.
func Build(entries []Entry, reservedNames []string, reservedRanges [][2]int64) (*Map, error) {
	b := builder{
		m: &Map{
			numbers:        make([]int32, 0, len(entries)),
			byNumber:       make(map[int32]NamePair, len(entries)),
			byProto:        make(map[string]int32, len(entries)),
			byJSON:         make(map[string]int32, 2*len(entries)),
			reservedNames:  set.NewStrings(reservedNames...),
			reservedRanges: newNumberRanges(reservedRanges),
		},
		strict: !flags.LegacyNameConflicts,
	}
	if b.strict {
		for _, r := range reservedRanges {
			if r[0] >= r[1] || r[0] < math.MinInt32 || r[1] > math.MaxInt32+1 {
				return nil, errors.New("invalid reserved range [%d, %d)", r[0], r[1])
			}
		}
	}
	for _, e := range entries {
		if err := b.add(e); err != nil {
			return nil, err
		}
	}
	return b.m, nil
}

type builder struct {
	m         *Map
	buf       []byte      // scratch space for derived JSON names
	jsonNames set.Strings // keys of byJSON that are JSON names
	strict    bool
}

func (b *builder) add(e Entry) error {
	m, n := b.m, e.Number
	if e.Names.proto == "" {
		return errors.New("number %d has an empty name", n)
	}
	if _, ok := m.byNumber[n]; ok {
		if b.strict {
			return errors.DuplicateNumber(int64(n))
		}
	} else {
		m.numbers = append(m.numbers, n)
	}
	if b.strict && m.reservedRanges.Has(n) {
		return errors.New("number %d of %q is reserved", n, e.Names.proto)
	}

	proto := staticName(e.Names.proto)
	var json Name
	switch e.Names.kind {
	case sameKind, aliasedKind:
		json = proto
	case standardKind:
		b.buf = strs.AppendJSONCamelCase(b.buf[:0], e.Names.proto)
		if proto.EqualBytes(b.buf) {
			json = proto
		} else {
			json = internedName(m.arena.Intern(b.buf))
		}
	case uniquePairKind:
		if e.Names.json == "" {
			return errors.New("number %d has an empty JSON name", n)
		}
		json = staticName(e.Names.json)
	default:
		return errors.New("number %d has invalid names: %v", n, e.Names)
	}
	m.byNumber[n] = NamePair{Proto: proto, JSON: json}

	if err := b.addProtoName(proto, n); err != nil {
		return err
	}
	b.insertJSON(json, n, true)
	for _, s := range e.Names.aliases {
		if s == "" {
			return errors.New("number %d has an empty alias", n)
		}
		if err := b.addProtoName(staticName(s), n); err != nil {
			return err
		}
	}
	return nil
}

// addProtoName adds a proto name to both namespaces, since the JSON format
// also accepts the original field and enum value names.
func (b *builder) addProtoName(name Name, n int32) error {
	if b.strict && b.m.reservedNames.Has(name.s) {
		return errors.New("name %q of %d is reserved", name.s, n)
	}
	if prev, ok := b.m.byProto[name.s]; ok && prev != n && b.strict {
		return errors.NameConflict("proto", name.s, int64(prev), int64(n))
	}
	b.m.byProto[name.s] = n
	b.insertJSON(name, n, false)
	return nil
}

// insertJSON indexes a name owned by the Map in the JSON namespace.
// Taking a Name rather than a string or []byte keeps caller-owned
// bytes from ever being stored.
func (b *builder) insertJSON(name Name, n int32, isJSON bool) {
	if _, ok := b.m.byJSON[name.s]; ok && b.strict {
		if !isJSON || b.jsonNames.Has(name.s) {
			return
		}
	}
	b.m.byJSON[name.s] = n
	if isJSON {
		b.jsonNames.Set(name.s)
	}
}

// Len reports the number of entries.
func (m *Map) Len() int { return len(m.numbers) }

// NamesForNumber returns the canonical names of n.
// It reports false if n is not declared.
func (m *Map) NamesForNumber(n int32) (NamePair, bool) {
	p, ok := m.byNumber[n]
	return p, ok
}

// NumberForProtoName returns the number declared with the proto name
// or alias b. The comparison is exact.
func (m *Map) NumberForProtoName(b []byte) (int32, bool) {
	n, ok := m.byProto[string(b)]
	return n, ok
}

// NumberForJSONName returns the number whose JSON name, proto name,
// or alias is b. The comparison is exact.
func (m *Map) NumberForJSONName(b []byte) (int32, bool) {
	n, ok := m.byJSON[string(b)]
	return n, ok
}

// NumberForJSONString is like NumberForJSONName, but for a name that
// had to be unescaped by the caller.
func (m *Map) NumberForJSONString(s string) (int32, bool) {
	n, ok := m.byJSON[s]
	return n, ok
}

// ProtoNames returns the canonical proto name of every entry.
// The order is unspecified.
func (m *Map) ProtoNames() []Name {
	names := make([]Name, 0, len(m.numbers))
	for _, n := range m.numbers {
		names = append(names, m.byNumber[n].Proto)
	}
	return names
}

// Range calls f for each entry in declaration order until f returns false.
func (m *Map) Range(f func(n int32, p NamePair) bool) {
	for _, n := range m.numbers {
		if !f(n, m.byNumber[n]) {
			return
		}
	}
}

// IsReservedName reports whether b is a reserved name.
// Invalid UTF-8 is never reserved.
func (m *Map) IsReservedName(b []byte) bool {
	if m.reservedNames.Len() == 0 {
		return false
	}
	if !utf8.Valid(b) {
		return false
	}
	return m.reservedNames.HasBytes(b)
}

// IsReservedNumber reports whether n lies within a reserved range.
func (m *Map) IsReservedNumber(n int32) bool {
	return m.reservedRanges.Has(n)
}

// ReservedNames returns the reserved names in sorted order.
func (m *Map) ReservedNames() []string {
	names := make([]string, 0, m.reservedNames.Len())
	for s := range m.reservedNames {
		names = append(names, s)
	}
	sort.Strings(names)
	return names
}

// ReservedRanges returns the reserved number ranges ordered by start.
// Each range is half-open. Overlapping ranges may be reported merged.
func (m *Map) ReservedRanges() [][2]int64 {
	return m.reservedRanges.List()
}
