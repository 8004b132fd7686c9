// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package internal_gennames is internal to the protobuf module.
package internal_gennames

import (
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/golang/protonames/internal/strs"
)

const protonamesPackage = protogen.GoImportPath("github.com/golang/protonames/runtime/protonames")

// GenerateFile generates the contents of a _names.pb.go file.
// It returns nil if the file declares no messages or enums.
func GenerateFile(gen *protogen.Plugin, f *protogen.File) *protogen.GeneratedFile {
	var messages []*protogen.Message
	var enums []*protogen.Enum
	enums = append(enums, f.Enums...)
	walkMessages(f.Messages, func(m *protogen.Message) {
		messages = append(messages, m)
		enums = append(enums, m.Enums...)
	})
	if len(messages) == 0 && len(enums) == 0 {
		return nil
	}

	g := gen.NewGeneratedFile(f.GeneratedFilenamePrefix+"_names.pb.go", f.GoImportPath)
	g.P("// Code generated by protoc-gen-go-names. DO NOT EDIT.")
	g.P("// source: ", f.Desc.Path())
	g.P()
	g.P("package ", f.GoPackageName)
	g.P()

	for _, e := range enums {
		genEnum(g, e)
	}
	for _, m := range messages {
		genMessage(g, m)
	}
	return g
}

func walkMessages(ms []*protogen.Message, f func(*protogen.Message)) {
	for _, m := range ms {
		if m.Desc.IsMapEntry() {
			continue
		}
		f(m)
		walkMessages(m.Messages, f)
	}
}

// NamesVarName is the name of the variable holding the name table of ident.
func NamesVarName(ident protogen.GoIdent) string {
	return "names_" + ident.GoName
}

func genEnum(g *protogen.GeneratedFile, e *protogen.Enum) {
	// Values sharing a number are aliases of the first one declared.
	var order []protoreflect.EnumNumber
	aliases := map[protoreflect.EnumNumber][]string{}
	for _, v := range e.Values {
		n := v.Desc.Number()
		if _, ok := aliases[n]; !ok {
			order = append(order, n)
		}
		aliases[n] = append(aliases[n], string(v.Desc.Name()))
	}
	var entries []string
	for _, n := range order {
		names := aliases[n]
		if len(names) == 1 {
			entries = append(entries, entry(g, int32(n), "Same", names[0]))
		} else {
			entries = append(entries, entry(g, int32(n), "Aliased", names...))
		}
	}

	rs := e.Desc.ReservedRanges()
	var ranges [][2]int64
	for i := 0; i < rs.Len(); i++ {
		r := rs.Get(i) // start inclusive; end inclusive
		ranges = append(ranges, [2]int64{int64(r[0]), int64(r[1]) + 1})
	}
	genTable(g, e.GoIdent, e.Desc.FullName(), entries, e.Desc.ReservedNames(), ranges)
}

func genMessage(g *protogen.GeneratedFile, m *protogen.Message) {
	var entries []string
	for _, f := range m.Fields {
		name, json := string(f.Desc.Name()), f.Desc.JSONName()
		n := int32(f.Desc.Number())
		switch {
		case json == name:
			entries = append(entries, entry(g, n, "Same", name))
		case json == strs.JSONCamelCase(name):
			entries = append(entries, entry(g, n, "Standard", name))
		default:
			entries = append(entries, entry(g, n, "UniquePair", name, json))
		}
	}

	rs := m.Desc.ReservedRanges()
	var ranges [][2]int64
	for i := 0; i < rs.Len(); i++ {
		r := rs.Get(i) // start inclusive; end exclusive
		ranges = append(ranges, [2]int64{int64(r[0]), int64(r[1])})
	}
	genTable(g, m.GoIdent, m.Desc.FullName(), entries, m.Desc.ReservedNames(), ranges)
}

func entry(g *protogen.GeneratedFile, n int32, shape string, names ...string) string {
	args := make([]string, len(names))
	for i, s := range names {
		args[i] = strconv.Quote(s)
	}
	return fmt.Sprintf("{Number: %d, Names: %s(%s)},", n,
		g.QualifiedGoIdent(protonamesPackage.Ident(shape)), strings.Join(args, ", "))
}

func genTable(g *protogen.GeneratedFile, ident protogen.GoIdent, name protoreflect.FullName, entries []string, reserved protoreflect.Names, ranges [][2]int64) {
	reservedNames := "nil"
	if reserved.Len() > 0 {
		ss := make([]string, reserved.Len())
		for i := range ss {
			ss[i] = strconv.Quote(string(reserved.Get(i)))
		}
		reservedNames = "[]string{" + strings.Join(ss, ", ") + "}"
	}
	reservedRanges := "nil"
	if len(ranges) > 0 {
		ss := make([]string, len(ranges))
		for i, r := range ranges {
			ss[i] = fmt.Sprintf("{%d, %d}", r[0], r[1])
		}
		reservedRanges = "[][2]int64{" + strings.Join(ss, ", ") + "}"
	}

	g.P("// ", NamesVarName(ident), " resolves the field and value names of ", name, ".")
	g.P("var ", NamesVarName(ident), " = ", protonamesPackage.Ident("Lazy"), "{Build: func() *", protonamesPackage.Ident("Map"), " {")
	g.P("return ", protonamesPackage.Ident("New"), "([]", protonamesPackage.Ident("Entry"), "{")
	for _, e := range entries {
		g.P(e)
	}
	g.P("}, ", reservedNames, ", ", reservedRanges, ")")
	g.P("}}")
	g.P()
}
