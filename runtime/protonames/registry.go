// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protonames

import (
	"sync"

	"golang.org/x/sync/singleflight"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Lazy builds a Map on first use.
// Generated code declares one Lazy per message or enum type.
type Lazy struct {
	Build func() *Map

	once    sync.Once
	m       *Map        // protected by once
	failure interface{} // value Build panicked with; protected by once
}

// Get returns the Map, building it on the first call.
// It is safe for concurrent use.
//
// If Build panics, Get panics with the same value on this and every
// later call.
func (l *Lazy) Get() *Map {
	l.once.Do(func() {
		defer func() {
			if p := recover(); p != nil {
				l.failure = p
			}
		}()
		l.m = l.Build()
	})
	if l.failure != nil {
		panic(l.failure)
	}
	return l.m
}

// GlobalRegistry is the registry used by FromMessage and FromEnum callers
// that share name maps across the process.
var GlobalRegistry = new(Registry)

// Registry holds the name maps of types identified by their full name.
// Each map is built at most once and published to all callers;
// concurrent loads of the same type wait for a single build.
//
// The zero value is an empty registry ready for use.
type Registry struct {
	maps  sync.Map // protoreflect.FullName -> *Map
	group singleflight.Group
}

// Load returns the Map registered under name, calling build to construct
// and register it if there is none. If build fails, nothing is registered
// and a later Load will try again.
func (r *Registry) Load(name protoreflect.FullName, build func() (*Map, error)) (*Map, error) {
	if m, ok := r.Find(name); ok {
		return m, nil
	}
	v, err, _ := r.group.Do(string(name), func() (interface{}, error) {
		if m, ok := r.Find(name); ok {
			return m, nil
		}
		m, err := build()
		if err != nil {
			return nil, err
		}
		r.maps.Store(name, m)
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Map), nil
}

// LoadMessage is Load with FromMessage as the builder.
func (r *Registry) LoadMessage(md protoreflect.MessageDescriptor) (*Map, error) {
	return r.Load(md.FullName(), func() (*Map, error) { return FromMessage(md) })
}

// LoadEnum is Load with FromEnum as the builder.
func (r *Registry) LoadEnum(ed protoreflect.EnumDescriptor) (*Map, error) {
	return r.Load(ed.FullName(), func() (*Map, error) { return FromEnum(ed) })
}

// Find returns the Map registered under name.
func (r *Registry) Find(name protoreflect.FullName) (*Map, bool) {
	v, ok := r.maps.Load(name)
	if !ok {
		return nil, false
	}
	return v.(*Map), true
}

// Range calls f for each registered Map until f returns false.
// The iteration order is unspecified.
func (r *Registry) Range(f func(protoreflect.FullName, *Map) bool) {
	r.maps.Range(func(k, v interface{}) bool {
		return f(k.(protoreflect.FullName), v.(*Map))
	})
}
