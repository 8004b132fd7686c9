// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The protoc-gen-go-names binary is a protoc plugin to generate the name
// tables used by the text and JSON codecs for each message and enum.
package main

import (
	"errors"
	"flag"

	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/types/pluginpb"

	gennames "github.com/golang/protonames/cmd/protoc-gen-go-names/internal_gennames"
)

func main() {
	var (
		flags        flag.FlagSet
		importPrefix = flags.String("import_prefix", "", "deprecated option")
	)
	protogen.Options{
		ParamFunc: flags.Set,
	}.Run(func(gen *protogen.Plugin) error {
		if *importPrefix != "" {
			return errors.New("protoc-gen-go-names: import_prefix is not supported")
		}
		gen.SupportedFeatures = uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)
		for _, f := range gen.Files {
			if f.Generate {
				gennames.GenerateFile(gen, f)
			}
		}
		return nil
	})
}
