// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package set provides a simple set data structure for strings.
//
// The API for the set is:
//	type Set(T {}) opaque
//
//	// Len reports the number of elements in the set.
//	func (Set) Len() int
//
//	// Has reports whether an item is in the set.
//	func (Set) Has(T) bool
//
//	// Set inserts the item into the set.
//	func (Set) Set(T)
//
// Items are never removed; sets are populated once and then only read.
package set
