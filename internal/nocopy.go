// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package internal holds helpers shared by strata packages.
package internal

import (
	"reflect"
	"sync/atomic"
)

// NoCopy detects a T which has been copied by value after first use.
// Embed it as a field of T and call Check at the start of every method.
type NoCopy[T any] struct {
	self atomic.Pointer[NoCopy[T]]
}

// Check panics if the receiver is not the NoCopy it was the first time Check was called on it.
func (n *NoCopy[T]) Check() {
	if n.self.CompareAndSwap(nil, n) || n.self.Load() == n {
		return
	}

	panic("illegal use of " + reflect.TypeFor[T]().Name() + " copied by value")
}
