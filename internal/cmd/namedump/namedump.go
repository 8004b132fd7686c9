// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// namedump is a tool for printing the name maps of protocol buffer types.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/golang/protonames/runtime/protonames"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	var opts options
	flag.StringVar(&opts.typeName, "type", "", "Full name of the only message or enum to print")
	flag.StringVar(&opts.lookup, "lookup", "", "Name to resolve in every printed type")
	flag.Usage = func() {
		log.Printf("Usage: %s [OPTIONS]... [INPUTS]...\n\n%s\n", filepath.Base(os.Args[0]), strings.Join([]string{
			"Print the name maps of every message and enum declared in the inputs.",
			"Each input is a serialized google.protobuf.FileDescriptorSet,",
			"as produced by protoc --descriptor_set_out. The sets must be",
			"self-contained (e.g., built with --include_imports).",
			"",
			"For each type, every number is printed with its proto and JSON names,",
			"followed by its aliases and reserved names and numbers.",
			"",
			"If no inputs are specified, the descriptor set is read in from stdin.",
			"",
			"Options:",
			"  -type name     " + flag.Lookup("type").Usage,
			"  -lookup name   " + flag.Lookup("lookup").Usage,
		}, "\n"))
	}
	flag.Parse()

	// Read descriptor sets.
	fds := new(descriptorpb.FileDescriptorSet)
	if flag.NArg() == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("ReadAll error: %v", err)
		}
		if err := appendFiles(fds, b); err != nil {
			log.Fatalf("stdin: %v", err)
		}
	}
	for _, f := range flag.Args() {
		b, err := os.ReadFile(f)
		if err != nil {
			log.Fatalf("ReadFile error: %v", err)
		}
		if err := appendFiles(fds, b); err != nil {
			log.Fatalf("%s: %v", f, err)
		}
	}

	files, err := protodesc.NewFiles(fds)
	if err != nil {
		log.Fatalf("Descriptor error: %v", err)
	}
	if err := dump(os.Stdout, files, opts); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	typeName string
	lookup   string
}

func appendFiles(fds *descriptorpb.FileDescriptorSet, b []byte) error {
	var set descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(b, &set); err != nil {
		return err
	}
	fds.File = append(fds.File, set.File...)
	return nil
}

// dump prints the name map of every type in files, in the order
// the types are declared.
func dump(w io.Writer, files *protoregistry.Files, opts options) (err error) {
	var found bool
	files.RangeFiles(func(fd protoreflect.FileDescriptor) bool {
		err = walk(fd, func(d protoreflect.Descriptor) error {
			if opts.typeName != "" && string(d.FullName()) != opts.typeName {
				return nil
			}
			found = true
			return dumpType(w, d, opts.lookup)
		})
		return err == nil
	})
	if err == nil && opts.typeName != "" && !found {
		err = fmt.Errorf("type %q not found", opts.typeName)
	}
	return err
}

// walk calls f for every message and enum declared in d, depth first.
func walk(d interface {
	Messages() protoreflect.MessageDescriptors
	Enums() protoreflect.EnumDescriptors
}, f func(protoreflect.Descriptor) error) error {
	for i := 0; i < d.Enums().Len(); i++ {
		if err := f(d.Enums().Get(i)); err != nil {
			return err
		}
	}
	for i := 0; i < d.Messages().Len(); i++ {
		md := d.Messages().Get(i)
		if md.IsMapEntry() {
			continue
		}
		if err := f(md); err != nil {
			return err
		}
		if err := walk(md, f); err != nil {
			return err
		}
	}
	return nil
}

func dumpType(w io.Writer, d protoreflect.Descriptor, lookup string) error {
	var m *protonames.Map
	var err error
	var kind string
	aliases := map[int32][]string{}
	switch d := d.(type) {
	case protoreflect.MessageDescriptor:
		kind = "message"
		m, err = protonames.GlobalRegistry.LoadMessage(d)
	case protoreflect.EnumDescriptor:
		kind = "enum"
		if m, err = protonames.GlobalRegistry.LoadEnum(d); err == nil {
			for i := 0; i < d.Values().Len(); i++ {
				vd := d.Values().Get(i)
				n := int32(vd.Number())
				if p, _ := m.NamesForNumber(n); !p.Proto.EqualString(string(vd.Name())) {
					aliases[n] = append(aliases[n], string(vd.Name()))
				}
			}
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s %v\n", kind, d.FullName())
	m.Range(func(n int32, p protonames.NamePair) bool {
		fmt.Fprintf(w, "\t%d\t%v\t%v", n, p.Proto, p.JSON)
		if as := aliases[n]; len(as) > 0 {
			fmt.Fprintf(w, "\taliases: %s", strings.Join(as, ", "))
		}
		fmt.Fprintln(w)
		return true
	})
	if names := m.ReservedNames(); len(names) > 0 {
		fmt.Fprintf(w, "\treserved names: %s\n", strings.Join(names, ", "))
	}
	if ranges := m.ReservedRanges(); len(ranges) > 0 {
		var ss []string
		for _, r := range ranges {
			ss = append(ss, fmt.Sprintf("[%d, %d)", r[0], r[1]))
		}
		fmt.Fprintf(w, "\treserved numbers: %s\n", strings.Join(ss, ", "))
	}
	if lookup != "" {
		b := []byte(lookup)
		if n, ok := m.NumberForProtoName(b); ok {
			fmt.Fprintf(w, "\tlookup %q: proto name of %d\n", lookup, n)
		} else if n, ok := m.NumberForJSONName(b); ok {
			fmt.Fprintf(w, "\tlookup %q: JSON name of %d\n", lookup, n)
		} else if m.IsReservedName(b) {
			fmt.Fprintf(w, "\tlookup %q: reserved\n", lookup)
		}
	}
	return nil
}
