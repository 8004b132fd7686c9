// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strs

import (
	"strconv"
	"testing"
)

func TestJSONCamelCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"foo", "foo"},
		{"foo_bar", "fooBar"},
		{"_foo", "Foo"},
		{"foo__bar", "fooBar"},
		{"foo_", "foo"},
		{"__", ""},
		{"alreadyCamel", "alreadyCamel"},
		{"Foo_Bar", "FooBar"},
		{"foo_1bar", "foo1bar"},
		{"foo_bar_baz", "fooBarBaz"},
		{"a_b_c", "aBC"},
	}
	for _, tt := range tests {
		if got := JSONCamelCase(tt.in); got != tt.want {
			t.Errorf("JSONCamelCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if got := string(AppendJSONCamelCase([]byte("x:"), tt.in)); got != "x:"+tt.want {
			t.Errorf("AppendJSONCamelCase(\"x:\", %q) = %q, want %q", tt.in, got, "x:"+tt.want)
		}
	}
}

func TestJSONCamelCaseNoUnderscore(t *testing.T) {
	// Inputs without underscores are returned as is.
	allocs := testing.AllocsPerRun(100, func() {
		_ = JSONCamelCase("alreadyCamel")
	})
	if allocs != 0 {
		t.Errorf("JSONCamelCase allocated %v times, want 0", allocs)
	}
}

func TestUnsafeString(t *testing.T) {
	for _, s := range []string{"", "a", "fooBar", strconv.Itoa(1 << 20)} {
		if got := UnsafeString([]byte(s)); got != s {
			t.Errorf("UnsafeString(%q) = %q", s, got)
		}
	}
}
