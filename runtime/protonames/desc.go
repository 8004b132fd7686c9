// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protonames

import (
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/golang/protonames/internal/errors"
	"github.com/golang/protonames/internal/strs"
)

// FromMessage builds the Map of the fields of md.
// Each field is declared with the narrowest shape describing its names.
func FromMessage(md protoreflect.MessageDescriptor) (*Map, error) {
	fds := md.Fields()
	entries := make([]Entry, 0, fds.Len())
	for i := 0; i < fds.Len(); i++ {
		fd := fds.Get(i)
		entries = append(entries, Entry{
			Number: int32(fd.Number()),
			Names:  fieldNames(string(fd.Name()), fd.JSONName()),
		})
	}

	rrs := md.ReservedRanges()
	ranges := make([][2]int64, rrs.Len())
	for i := range ranges {
		r := rrs.Get(i) // start inclusive; end exclusive
		ranges[i] = [2]int64{int64(r[0]), int64(r[1])}
	}

	m, err := Build(entries, reservedNames(md.ReservedNames()), ranges)
	if err != nil {
		return nil, errors.New("message %v: %v", md.FullName(), err)
	}
	return m, nil
}

func fieldNames(name, json string) Names {
	switch {
	case json == name:
		return Same(name)
	case json == strs.JSONCamelCase(name):
		return Standard(name)
	default:
		return UniquePair(name, json)
	}
}

// FromEnum builds the Map of the values of ed.
// Values sharing a number are aliases of the first one declared.
func FromEnum(ed protoreflect.EnumDescriptor) (*Map, error) {
	vds := ed.Values()
	var order []int32
	groups := make(map[int32]*Names, vds.Len())
	for i := 0; i < vds.Len(); i++ {
		vd := vds.Get(i)
		n, name := int32(vd.Number()), string(vd.Name())
		if g, ok := groups[n]; ok {
			g.aliases = append(g.aliases, name)
			continue
		}
		g := Aliased(name)
		groups[n] = &g
		order = append(order, n)
	}
	entries := make([]Entry, 0, len(order))
	for _, n := range order {
		entries = append(entries, Entry{Number: n, Names: *groups[n]})
	}

	rrs := ed.ReservedRanges()
	ranges := make([][2]int64, rrs.Len())
	for i := range ranges {
		r := rrs.Get(i) // start inclusive; end inclusive
		ranges[i] = [2]int64{int64(r[0]), int64(r[1]) + 1}
	}

	m, err := Build(entries, reservedNames(ed.ReservedNames()), ranges)
	if err != nil {
		return nil, errors.New("enum %v: %v", ed.FullName(), err)
	}
	return m, nil
}

func reservedNames(names protoreflect.Names) []string {
	ss := make([]string, names.Len())
	for i := range ss {
		ss[i] = string(names.Get(i))
	}
	return ss
}
