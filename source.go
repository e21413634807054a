// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package strata

// Source is the interface that wraps the basic Lookup method.
//
// Lookup returns the raw value of the given key and whether the source defines it.
// A key defined with an empty value is a definition, distinct from an absent key.
// String returns the origin of the source for diagnostics, e.g. `file:app.properties`.
//
// A Source must present a stable snapshot: it must not change what Lookup returns
// while it is part of a [Chain].
type Source interface {
	Lookup(key string) (string, bool)
	String() string
}

// Lister is implemented by a [Source] which can enumerate its keys.
// Sources that do not implement it are skipped by [Chain.Keys].
type Lister interface {
	Keys() []string
}
