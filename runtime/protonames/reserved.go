// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protonames

import "sort"

// numberRanges is a set of half-open number ranges.
// Ends are 64-bit so that a range may extend through math.MaxInt32.
type numberRanges struct {
	sorted [][2]int64         // start inclusive; end exclusive
	single map[int32]struct{} // ranges covering exactly one number
}

func newNumberRanges(rs [][2]int64) numberRanges {
	var p numberRanges
	for _, r := range rs {
		if r[0] == r[1]-1 {
			if p.single == nil {
				p.single = make(map[int32]struct{}, len(rs))
			}
			p.single[int32(r[0])] = struct{}{}
		} else if r[0] < r[1] {
			p.sorted = append(p.sorted, r)
		}
	}
	sort.Slice(p.sorted, func(i, j int) bool {
		return p.sorted[i][0] < p.sorted[j][0]
	})

	// Merge overlapping ranges so that at most one range can contain n.
	merged := p.sorted[:0]
	for _, r := range p.sorted {
		if k := len(merged) - 1; k >= 0 && r[0] <= merged[k][1] {
			if r[1] > merged[k][1] {
				merged[k][1] = r[1]
			}
			continue
		}
		merged = append(merged, r)
	}
	p.sorted = merged
	return p
}

func (p *numberRanges) Has(n int32) bool {
	if _, ok := p.single[n]; ok {
		return true
	}
	for ls := p.sorted; len(ls) > 0; {
		i := len(ls) / 2
		switch r := ls[i]; {
		case int64(n) < r[0]:
			ls = ls[:i] // search lower
		case int64(n) >= r[1]:
			ls = ls[i+1:] // search higher
		default:
			return true
		}
	}
	return false
}

// List returns every range, ordered by start.
// Overlapping or adjacent ranges may be reported merged.
func (p *numberRanges) List() [][2]int64 {
	rs := make([][2]int64, 0, len(p.sorted)+len(p.single))
	rs = append(rs, p.sorted...)
	for n := range p.single {
		rs = append(rs, [2]int64{int64(n), int64(n) + 1})
	}
	sort.Slice(rs, func(i, j int) bool {
		if rs[i][0] != rs[j][0] {
			return rs[i][0] < rs[j][0]
		}
		return rs[i][1] < rs[j][1]
	})
	return rs
}
