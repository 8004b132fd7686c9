// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors implements functions to manipulate errors.
package errors

import (
	"errors"
	"fmt"
)

// New formats a string according to the format specifier and arguments and
// returns an error that has a "protonames" prefix.
// The first error among the arguments, if any, is reported by Unwrap.
func New(f string, x ...interface{}) error {
	var cause error
	for i := 0; i < len(x); i++ {
		if e, ok := x[i].(*prefixError); ok {
			x[i] = e.s // avoid "protonames: " prefix when chaining
		}
		if e, ok := x[i].(error); ok && cause == nil {
			cause = e
		}
	}
	return &prefixError{s: fmt.Sprintf(f, x...), cause: cause}
}

type prefixError struct {
	s     string
	cause error
}

func (e *prefixError) Error() string { return "protonames: " + e.s }
func (e *prefixError) Unwrap() error { return e.cause }

// Is is errors.Is.
func Is(err, target error) bool { return errors.Is(err, target) }

// As is errors.As.
func As(err error, target interface{}) bool { return errors.As(err, target) }

// DuplicateNumber reports a number declared by more than one entry.
func DuplicateNumber(n int64) error {
	return New("number %d is declared more than once", n)
}

// NameConflict reports a name that resolves to two different numbers.
func NameConflict(space, name string, prev, n int64) error {
	return New("%s name %q is used by both %d and %d", space, name, prev, n)
}
