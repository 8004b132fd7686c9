// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package set

// Strings represents a set of strings.
// The zero value is an empty set.
type Strings map[string]struct{}

// NewStrings returns a set holding every string in ss,
// or nil if ss is empty.
func NewStrings(ss ...string) Strings {
	if len(ss) == 0 {
		return nil
	}
	set := make(Strings, len(ss))
	for _, s := range ss {
		set[s] = struct{}{}
	}
	return set
}

func (ss *Strings) Len() int {
	return len(*ss)
}
func (ss *Strings) Has(s string) bool {
	_, ok := (*ss)[s]
	return ok
}

// HasBytes is equivalent to Has(string(b)), but does not allocate.
func (ss *Strings) HasBytes(b []byte) bool {
	_, ok := (*ss)[string(b)]
	return ok
}
func (ss *Strings) Set(s string) {
	if *ss == nil {
		*ss = make(map[string]struct{})
	}
	(*ss)[s] = struct{}{}
}
