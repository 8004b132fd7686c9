// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strs provides string manipulation functionality specific to protobuf.
package strs

// JSONCamelCase converts a snake_case identifier to a camelCase identifier,
// as the protobuf JSON mapping does for field names.
//
// Every underscore is dropped and causes the next non-underscore byte to be
// upper-cased. Nothing else is modified, so digits and existing upper-case
// letters are passed through. Generated code depends on this exact mapping.
func JSONCamelCase(s string) string {
	if !hasUnderscore(s) {
		return s
	}
	return string(AppendJSONCamelCase(make([]byte, 0, len(s)), s))
}

// AppendJSONCamelCase appends the JSONCamelCase form of s to b.
func AppendJSONCamelCase(b []byte, s string) []byte {
	var wasUnderscore bool
	for i := 0; i < len(s); i++ { // proto identifiers are always ASCII
		c := s[i]
		if c == '_' {
			wasUnderscore = true
			continue
		}
		if wasUnderscore && isASCIILower(c) {
			c -= 'a' - 'A'
		}
		b = append(b, c)
		wasUnderscore = false
	}
	return b
}

func hasUnderscore(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			return true
		}
	}
	return false
}

func isASCIILower(c byte) bool {
	return 'a' <= c && c <= 'z'
}
