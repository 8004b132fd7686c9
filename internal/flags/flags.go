// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flags provides a set of flags controlled by build tags.
package flags

// LegacyNameConflicts specifies whether name maps tolerate malformed
// declarations, such as two entries sharing a number or a name, instead of
// rejecting them. When enabled, the entry declared last takes precedence in
// every index it writes to, which is the behavior of older runtimes.
//
// This is disabled by default unless built with the "protolegacy" tag.
//
// WARNING: The compatibility agreement covers nothing provided by this flag.
// As such, functionality may suddenly be removed or changed at our discretion.
const LegacyNameConflicts = protoLegacy

// PureGo reports whether the module was built without package unsafe,
// either through the "purego" or the "appengine" tag.
const PureGo = pureGo
