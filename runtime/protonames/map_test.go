// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protonames_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/golang/protonames/internal/flags"
	"github.com/golang/protonames/runtime/protonames"
)

// testMap mirrors what generated code declares for a small message.
var testMap = protonames.Lazy{Build: func() *protonames.Map {
	return protonames.New([]protonames.Entry{
		{Number: 1, Names: protonames.Same("id")},
		{Number: 2, Names: protonames.Standard("foo_bar")},
		{Number: 3, Names: protonames.Standard("alreadyCamel")},
		{Number: 4, Names: protonames.UniquePair("baz", "BAZ_VALUE")},
		{Number: 5, Names: protonames.Standard("_leading")},
		{Number: 100, Names: protonames.Standard("foo_bar_baz")},
	}, []string{"old_field", "gone"}, [][2]int64{{10, 20}, {50, 51}})
}}

var testEnum = protonames.Lazy{Build: func() *protonames.Map {
	return protonames.New([]protonames.Entry{
		{Number: 0, Names: protonames.Same("UNKNOWN")},
		{Number: 1, Names: protonames.Aliased("STARTED", "RUNNING", "BUSY")},
		{Number: -1, Names: protonames.Aliased("NEGATIVE")},
	}, nil, nil)
}}

type pair struct{ Proto, JSON string }

func names(p protonames.NamePair) pair {
	return pair{p.Proto.String(), p.JSON.String()}
}

func TestNamesForNumber(t *testing.T) {
	tests := []struct {
		m      *protonames.Map
		n      int32
		want   pair
		wantOK bool
	}{
		{m: testMap.Get(), n: 1, want: pair{"id", "id"}, wantOK: true},
		{m: testMap.Get(), n: 2, want: pair{"foo_bar", "fooBar"}, wantOK: true},
		{m: testMap.Get(), n: 3, want: pair{"alreadyCamel", "alreadyCamel"}, wantOK: true},
		{m: testMap.Get(), n: 4, want: pair{"baz", "BAZ_VALUE"}, wantOK: true},
		{m: testMap.Get(), n: 5, want: pair{"_leading", "Leading"}, wantOK: true},
		{m: testMap.Get(), n: 100, want: pair{"foo_bar_baz", "fooBarBaz"}, wantOK: true},
		{m: testMap.Get(), n: 6},
		{m: testMap.Get(), n: 0},
		{m: testEnum.Get(), n: 0, want: pair{"UNKNOWN", "UNKNOWN"}, wantOK: true},
		{m: testEnum.Get(), n: 1, want: pair{"STARTED", "STARTED"}, wantOK: true},
		{m: testEnum.Get(), n: -1, want: pair{"NEGATIVE", "NEGATIVE"}, wantOK: true},
		{m: testEnum.Get(), n: 2},
	}
	for _, tt := range tests {
		p, ok := tt.m.NamesForNumber(tt.n)
		if ok != tt.wantOK {
			t.Errorf("NamesForNumber(%d) ok = %v, want %v", tt.n, ok, tt.wantOK)
			continue
		}
		if got := names(p); ok && got != tt.want {
			t.Errorf("NamesForNumber(%d) = %v, want %v", tt.n, got, tt.want)
		}
		if !ok && (p.Proto.IsValid() || p.JSON.IsValid()) {
			t.Errorf("NamesForNumber(%d) returned valid names for a missing number", tt.n)
		}
	}
}

func TestNumberForName(t *testing.T) {
	tests := []struct {
		m         *protonames.Map
		in        string
		wantProto int32 // -99 means not found
		wantJSON  int32 // -99 means not found
	}{
		{testMap.Get(), "id", 1, 1},
		{testMap.Get(), "foo_bar", 2, 2},
		{testMap.Get(), "fooBar", -99, 2},
		{testMap.Get(), "alreadyCamel", 3, 3},
		{testMap.Get(), "baz", 4, 4},
		{testMap.Get(), "BAZ_VALUE", -99, 4},
		{testMap.Get(), "Baz", -99, -99},
		{testMap.Get(), "_leading", 5, 5},
		{testMap.Get(), "Leading", -99, 5},
		{testMap.Get(), "fooBarBaz", -99, 100},
		{testMap.Get(), "FOO_BAR", -99, -99},
		{testMap.Get(), "", -99, -99},
		{testMap.Get(), "old_field", -99, -99},
		{testEnum.Get(), "STARTED", 1, 1},
		{testEnum.Get(), "RUNNING", 1, 1},
		{testEnum.Get(), "BUSY", 1, 1},
		{testEnum.Get(), "NEGATIVE", -1, -1},
		{testEnum.Get(), "started", -99, -99},
	}
	for _, tt := range tests {
		got, ok := tt.m.NumberForProtoName([]byte(tt.in))
		if !ok {
			got = -99
		}
		if got != tt.wantProto {
			t.Errorf("NumberForProtoName(%q) = %d, want %d", tt.in, got, tt.wantProto)
		}

		got, ok = tt.m.NumberForJSONName([]byte(tt.in))
		if !ok {
			got = -99
		}
		if got != tt.wantJSON {
			t.Errorf("NumberForJSONName(%q) = %d, want %d", tt.in, got, tt.wantJSON)
		}

		got, ok = tt.m.NumberForJSONString(tt.in)
		if !ok {
			got = -99
		}
		if got != tt.wantJSON {
			t.Errorf("NumberForJSONString(%q) = %d, want %d", tt.in, got, tt.wantJSON)
		}
	}
}

func TestNameShapes(t *testing.T) {
	m := testMap.Get()

	// Same: both names are the same bytes and resolve through both namespaces.
	p, _ := m.NamesForNumber(1)
	if !p.Proto.Equal(p.JSON) {
		t.Errorf("Same: proto %q and JSON %q differ", p.Proto, p.JSON)
	}
	if p.Proto.Kind() != protonames.StaticName || p.JSON.Kind() != protonames.StaticName {
		t.Errorf("Same: kinds = (%v, %v), want static", p.Proto.Kind(), p.JSON.Kind())
	}

	// Standard: the derived JSON name is stored in the arena.
	p, _ = m.NamesForNumber(2)
	if p.JSON.Kind() != protonames.InternedName {
		t.Errorf("Standard: JSON kind = %v, want interned", p.JSON.Kind())
	}

	// Standard without underscores needs no derived copy.
	p, _ = m.NamesForNumber(3)
	if p.JSON.Kind() != protonames.StaticName {
		t.Errorf("Standard(alreadyCamel): JSON kind = %v, want static", p.JSON.Kind())
	}
}

func TestRoundTrip(t *testing.T) {
	for _, m := range []*protonames.Map{testMap.Get(), testEnum.Get()} {
		m.Range(func(n int32, p protonames.NamePair) bool {
			if got, ok := m.NumberForProtoName(p.Proto.AppendTo(nil)); !ok || got != n {
				t.Errorf("NumberForProtoName(%q) = (%d, %v), want (%d, true)", p.Proto, got, ok, n)
			}
			if got, ok := m.NumberForJSONName(p.JSON.AppendTo(nil)); !ok || got != n {
				t.Errorf("NumberForJSONName(%q) = (%d, %v), want (%d, true)", p.JSON, got, ok, n)
			}
			return true
		})
	}
}

func TestProtoNames(t *testing.T) {
	var got []string
	for _, n := range testMap.Get().ProtoNames() {
		got = append(got, n.String())
	}
	want := []string{"id", "foo_bar", "alreadyCamel", "baz", "_leading", "foo_bar_baz"}
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(x, y string) bool { return x < y })); diff != "" {
		t.Errorf("ProtoNames() mismatch (-want +got):\n%s", diff)
	}

	// Aliases are not entries of their own.
	got = nil
	for _, n := range testEnum.Get().ProtoNames() {
		got = append(got, n.String())
	}
	sort.Strings(got)
	if want := []string{"NEGATIVE", "STARTED", "UNKNOWN"}; !cmp.Equal(want, got) {
		t.Errorf("ProtoNames() = %v, want %v", got, want)
	}
	if n := testEnum.Get().Len(); n != 3 {
		t.Errorf("Len() = %d, want 3", n)
	}
}

func TestReserved(t *testing.T) {
	m := testMap.Get()
	for _, tt := range []struct {
		in   string
		want bool
	}{
		{"old_field", true},
		{"gone", true},
		{"Gone", false},
		{"old_field ", false},
		{"id", false},
		{"", false},
		{"\xff\xfe", false},
	} {
		if got := m.IsReservedName([]byte(tt.in)); got != tt.want {
			t.Errorf("IsReservedName(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, tt := range []struct {
		in   int32
		want bool
	}{
		{9, false},
		{10, true},
		{15, true},
		{19, true},
		{20, false},
		{49, false},
		{50, true},
		{51, false},
	} {
		if got := m.IsReservedNumber(tt.in); got != tt.want {
			t.Errorf("IsReservedNumber(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if diff := cmp.Diff([]string{"gone", "old_field"}, m.ReservedNames()); diff != "" {
		t.Errorf("ReservedNames() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][2]int64{{10, 20}, {50, 51}}, m.ReservedRanges()); diff != "" {
		t.Errorf("ReservedRanges() mismatch (-want +got):\n%s", diff)
	}

	e := testEnum.Get()
	if e.IsReservedName([]byte("UNKNOWN")) || e.IsReservedNumber(0) {
		t.Errorf("map without reserved data reports reserved entries")
	}
}

func TestReservedInvalidUTF8(t *testing.T) {
	m := protonames.New([]protonames.Entry{
		{Number: 1, Names: protonames.Same("id")},
	}, []string{"\xff\xfe", "gone"}, nil)
	if m.IsReservedName([]byte("\xff\xfe")) {
		t.Errorf("IsReservedName(%q) = true, want false", "\xff\xfe")
	}
	if !m.IsReservedName([]byte("gone")) {
		t.Errorf("IsReservedName(%q) = false, want true", "gone")
	}
}

func TestJSONNameClashes(t *testing.T) {
	if flags.LegacyNameConflicts {
		t.Skip("the last entry wins with the protolegacy tag")
	}
	tests := []struct {
		desc      string
		entries   []protonames.Entry
		in        string
		wantJSON  int32
		wantProto int32 // -99 means not found
	}{{
		desc: "derived JSON name matches a later proto name",
		entries: []protonames.Entry{
			{Number: 1, Names: protonames.Standard("foo_bar")},
			{Number: 2, Names: protonames.Same("fooBar")},
		},
		in:        "fooBar",
		wantJSON:  1,
		wantProto: 2,
	}, {
		desc: "derived JSON name matches an earlier proto name",
		entries: []protonames.Entry{
			{Number: 1, Names: protonames.UniquePair("fooBar", "custom")},
			{Number: 2, Names: protonames.Standard("foo_bar")},
		},
		in:        "fooBar",
		wantJSON:  2,
		wantProto: 1,
	}, {
		desc: "explicit JSON names collide",
		entries: []protonames.Entry{
			{Number: 1, Names: protonames.UniquePair("a", "x")},
			{Number: 2, Names: protonames.UniquePair("b", "x")},
		},
		in:        "x",
		wantJSON:  1,
		wantProto: -99,
	}, {
		desc: "alias matches an earlier JSON name",
		entries: []protonames.Entry{
			{Number: 1, Names: protonames.Standard("a_b")},
			{Number: 2, Names: protonames.Aliased("C", "aB")},
		},
		in:        "aB",
		wantJSON:  1,
		wantProto: 2,
	}}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			m, err := protonames.Build(tt.entries, nil, nil)
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if got, ok := m.NumberForJSONName([]byte(tt.in)); !ok || got != tt.wantJSON {
				t.Errorf("NumberForJSONName(%q) = (%d, %v), want (%d, true)", tt.in, got, ok, tt.wantJSON)
			}
			got, ok := m.NumberForProtoName([]byte(tt.in))
			if !ok {
				got = -99
			}
			if got != tt.wantProto {
				t.Errorf("NumberForProtoName(%q) = %d, want %d", tt.in, got, tt.wantProto)
			}
			// Every entry keeps its own names.
			for _, e := range tt.entries {
				if _, ok := m.NamesForNumber(e.Number); !ok {
					t.Errorf("NamesForNumber(%d) not found", e.Number)
				}
			}
		})
	}
}

func TestHalfOpenRange(t *testing.T) {
	m := protonames.New(nil, nil, [][2]int64{{5, 10}})
	for n := int32(0); n < 15; n++ {
		want := 5 <= n && n < 10
		if got := m.IsReservedNumber(n); got != want {
			t.Errorf("IsReservedNumber(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestIsolation(t *testing.T) {
	build := func(prefix string) *protonames.Map {
		return protonames.New([]protonames.Entry{
			{Number: 1, Names: protonames.Standard(prefix + "_one")},
			{Number: 2, Names: protonames.Standard(prefix + "_two")},
		}, nil, nil)
	}
	m1, m2 := build("left"), build("right")
	p1, _ := m1.NamesForNumber(1)
	m1 = nil // drop the first map

	p2, _ := m2.NamesForNumber(1)
	if p2.JSON.String() != "rightOne" {
		t.Errorf("JSON name = %q, want %q", p2.JSON, "rightOne")
	}
	if p1.JSON.String() != "leftOne" {
		t.Errorf("JSON name retained from dropped map = %q, want %q", p1.JSON, "leftOne")
	}
	if _, ok := m2.NumberForJSONName([]byte("leftOne")); ok {
		t.Errorf("names of one map resolve in another")
	}
}

func TestTransientInput(t *testing.T) {
	m := testMap.Get()
	buf := []byte("foo_bar")
	if n, ok := m.NumberForProtoName(buf); !ok || n != 2 {
		t.Fatalf("NumberForProtoName(%q) = (%d, %v), want (2, true)", buf, n, ok)
	}
	copy(buf, "xxx_xxx") // callers reuse their buffers
	if n, ok := m.NumberForProtoName([]byte("foo_bar")); !ok || n != 2 {
		t.Errorf("lookup after caller mutated its buffer = (%d, %v), want (2, true)", n, ok)
	}
	if _, ok := m.NumberForProtoName(buf); ok {
		t.Errorf("NumberForProtoName(%q) found a number", buf)
	}
}

func TestLookupAllocs(t *testing.T) {
	m := testMap.Get()
	b := []byte("fooBarBaz")
	allocs := testing.AllocsPerRun(100, func() {
		m.NumberForJSONName(b)
		m.NumberForProtoName(b)
		m.NamesForNumber(100)
		m.IsReservedName(b)
		m.IsReservedNumber(15)
	})
	if allocs != 0 {
		t.Errorf("lookups allocated %v times, want 0", allocs)
	}
}

func TestBuildErrors(t *testing.T) {
	if flags.LegacyNameConflicts {
		t.Skip("collisions are tolerated with the protolegacy tag")
	}
	tests := []struct {
		desc    string
		entries []protonames.Entry
		names   []string
		ranges  [][2]int64
		wantErr string
	}{{
		desc:    "duplicate number",
		entries: []protonames.Entry{{Number: 1, Names: protonames.Same("a")}, {Number: 1, Names: protonames.Same("b")}},
		wantErr: "number 1 is declared more than once",
	}, {
		desc:    "duplicate proto name",
		entries: []protonames.Entry{{Number: 1, Names: protonames.Same("a")}, {Number: 2, Names: protonames.Same("a")}},
		wantErr: `proto name "a" is used by both 1 and 2`,
	}, {
		desc:    "alias collides",
		entries: []protonames.Entry{{Number: 1, Names: protonames.Same("A")}, {Number: 2, Names: protonames.Aliased("B", "A")}},
		wantErr: `proto name "A" is used by both 1 and 2`,
	}, {
		desc:    "empty name",
		entries: []protonames.Entry{{Number: 1, Names: protonames.Same("")}},
		wantErr: "number 1 has an empty name",
	}, {
		desc:    "zero names",
		entries: []protonames.Entry{{Number: 1, Names: protonames.Names{}}},
		wantErr: "number 1 has an empty name",
	}, {
		desc:    "empty JSON name",
		entries: []protonames.Entry{{Number: 1, Names: protonames.UniquePair("a", "")}},
		wantErr: "number 1 has an empty JSON name",
	}, {
		desc:    "empty alias",
		entries: []protonames.Entry{{Number: 1, Names: protonames.Aliased("A", "")}},
		wantErr: "number 1 has an empty alias",
	}, {
		desc:    "reserved name",
		entries: []protonames.Entry{{Number: 1, Names: protonames.Same("a")}},
		names:   []string{"a"},
		wantErr: `name "a" of 1 is reserved`,
	}, {
		desc:    "reserved alias",
		entries: []protonames.Entry{{Number: 1, Names: protonames.Aliased("A", "B")}},
		names:   []string{"B"},
		wantErr: `name "B" of 1 is reserved`,
	}, {
		desc:    "reserved number",
		entries: []protonames.Entry{{Number: 7, Names: protonames.Same("a")}},
		ranges:  [][2]int64{{5, 10}},
		wantErr: `number 7 of "a" is reserved`,
	}, {
		desc:    "empty range",
		ranges:  [][2]int64{{5, 5}},
		wantErr: "invalid reserved range [5, 5)",
	}, {
		desc:    "inverted range",
		ranges:  [][2]int64{{10, 5}},
		wantErr: "invalid reserved range [10, 5)",
	}}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := protonames.Build(tt.entries, tt.names, tt.ranges)
			if err == nil {
				t.Fatalf("Build() succeeded, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Build() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestBuildAccepts(t *testing.T) {
	// Names may repeat within a single entry.
	_, err := protonames.Build([]protonames.Entry{
		{Number: 1, Names: protonames.UniquePair("a", "a")},
		{Number: 2, Names: protonames.Aliased("B", "B", "C")},
		{Number: 3, Names: protonames.Standard("c_d")},
		{Number: 4, Names: protonames.Same("cD_")},
	}, []string{"x"}, [][2]int64{{5, 10}, {8, 12}})
	if err != nil {
		t.Errorf("Build() = %v, want nil", err)
	}
}

func TestNewPanics(t *testing.T) {
	if flags.LegacyNameConflicts {
		t.Skip("collisions are tolerated with the protolegacy tag")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("New() with a duplicate number did not panic")
		}
	}()
	protonames.New([]protonames.Entry{{Number: 1, Names: protonames.Same("a")}, {Number: 1, Names: protonames.Same("b")}}, nil, nil)
}
