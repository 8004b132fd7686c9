// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build purego || appengine
// +build purego appengine

package strs

// UnsafeString is equivalent to string(b).
func UnsafeString(b []byte) string {
	return string(b)
}
