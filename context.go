// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package strata

import "context"

// NewContext returns a copy of ctx carrying the resolver.
// Use it to hand a Resolver to code deep in a call chain instead of a package-level variable.
func NewContext(ctx context.Context, resolver *Resolver) context.Context {
	return context.WithValue(ctx, contextKey{}, resolver)
}

// FromContext returns the Resolver carried by ctx, if any.
func FromContext(ctx context.Context) (*Resolver, bool) {
	resolver, ok := ctx.Value(contextKey{}).(*Resolver)

	return resolver, ok && resolver != nil
}

type contextKey struct{}
