// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protonames

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNumberRanges(t *testing.T) {
	p := newNumberRanges([][2]int64{
		{100, 200},
		{1, 2},
		{5, 10},
		{8, 12},
		{150, 160},
		{-10, -5},
		{math.MaxInt32 - 1, math.MaxInt32 + 1},
		{30, 30}, // empty
	})
	tests := []struct {
		in   int32
		want bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{4, false},
		{5, true},
		{10, true},
		{11, true},
		{12, false},
		{30, false},
		{99, false},
		{100, true},
		{155, true},
		{199, true},
		{200, false},
		{-11, false},
		{-10, true},
		{-6, true},
		{-5, false},
		{math.MaxInt32 - 2, false},
		{math.MaxInt32 - 1, true},
		{math.MaxInt32, true},
		{math.MinInt32, false},
	}
	for _, tt := range tests {
		if got := p.Has(tt.in); got != tt.want {
			t.Errorf("Has(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}

	want := [][2]int64{{-10, -5}, {1, 2}, {5, 12}, {100, 200}, {math.MaxInt32 - 1, math.MaxInt32 + 1}}
	if diff := cmp.Diff(want, p.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestNumberRangesEmpty(t *testing.T) {
	var p numberRanges
	if p.Has(0) {
		t.Errorf("empty Has(0) = true, want false")
	}
	if got := p.List(); len(got) != 0 {
		t.Errorf("empty List() = %v, want none", got)
	}
}
