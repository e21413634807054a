// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package strata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/nil-go/strata/internal"
)

// Resolver answers lookups against a [Chain]:
// it picks the raw value by precedence, expands placeholders
// and converts the result into the requested [Type].
//
// To create a new Resolver, call [New].
type Resolver struct {
	nocopy internal.NoCopy[Resolver]

	// Options.
	logger        *slog.Logger
	observer      Observer
	prefix        string
	suffix        string
	listDelimiter string
	keyDelimiter  string
	tagName       string
	noCache       bool

	chain      *Chain
	converters registry

	// Successfully resolved entries. Failures are never cached.
	cache sync.Map // map[string]Entry
	group singleflight.Group
}

// Entry is a resolved key.
type Entry struct {
	Key string
	// Value is the raw value with every placeholder substituted.
	Value string
	// Raw is the value as supplied by Source.
	Raw string
	// Source supplied Raw. Substituted parts of Value may come from other sources.
	Source Source
}

// Observer is notified about every top-level lookup on a [Resolver].
//
// Implementations must be safe for concurrent use and must not block.
type Observer interface {
	Resolved(key string, cached bool)
	Failed(key string, err error)
}

// New creates a Resolver over the given Chain with the given Option(s).
//
// It panics if chain is nil.
func New(chain *Chain, opts ...Option) *Resolver {
	if chain == nil {
		panic("cannot create Resolver with nil Chain")
	}

	option := &options{
		chain:         chain,
		prefix:        "${",
		suffix:        "}",
		listDelimiter: ",",
		keyDelimiter:  ".",
		tagName:       "strata",
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}
	option.logger = option.logger.WithGroup("strata")
	option.converters.converters = builtinConverters(option.listDelimiter)

	return (*Resolver)(option)
}

// Chain returns the chain the Resolver reads from.
func (r *Resolver) Chain() *Chain {
	return r.chain
}

// Resolve returns the entry of the given key with all placeholders substituted.
//
// The returned error is a [*Failure] of kind MissingKey, CircularPlaceholder or UnresolvedPlaceholder.
//
// This method is concurrency-safe.
func (r *Resolver) Resolve(key string) (Entry, error) {
	r.nocopy.Check()

	entry, cached, err := r.lookup(key)
	r.observe(key, cached, err)

	return entry, err
}

// ResolveAs resolves the given key and converts its value with the converter registered for typ.
//
// It returns an error wrapping [ErrUnknownType] if no converter is registered for typ.
// Otherwise, the returned error is a [*Failure], including ConversionError
// if the value does not satisfy the grammar of typ.
//
// This method is concurrency-safe.
func (r *Resolver) ResolveAs(key string, typ Type) (any, error) { //nolint:ireturn
	r.nocopy.Check()

	converter, err := r.converters.get(typ)
	if err != nil {
		return nil, err
	}

	entry, cached, err := r.lookup(key)
	if err != nil {
		r.observe(key, cached, err)

		return nil, err
	}

	value, err := converter(entry.Value)
	if err != nil {
		failure := &Failure{
			Kind:    ConversionError,
			Key:     key,
			Path:    []string{key},
			Value:   entry.Value,
			Type:    typ,
			Sources: []string{entry.Source.String()},
			Err:     err,
		}
		r.observe(key, cached, failure)

		return nil, failure
	}
	r.observe(key, cached, nil)

	return value, nil
}

// ResolveOr is like ResolveAs but returns fallback if no source defines the key.
// Every other failure, including an unresolved placeholder, is still returned.
func (r *Resolver) ResolveOr(key string, typ Type, fallback any) (any, error) { //nolint:ireturn
	value, err := r.ResolveAs(key, typ)
	if errors.Is(err, ErrMissingKey) {
		return fallback, nil
	}

	return value, err
}

// Require is like Resolve for configuration the application cannot run without.
// It logs and panics with a [*RequiredError] if the key cannot be resolved.
func (r *Resolver) Require(key string) string {
	entry, err := r.Resolve(key)
	if err != nil {
		r.fatal(key, err)
	}

	return entry.Value
}

// RequireAs is like ResolveAs for configuration the application cannot run without.
// It logs and panics with a [*RequiredError] if the key cannot be resolved or converted.
// It panics with the error itself if no converter is registered for typ.
func (r *Resolver) RequireAs(key string, typ Type) any { //nolint:ireturn
	value, err := r.ResolveAs(key, typ)
	if err != nil {
		r.fatal(key, err)
	}

	return value
}

// Keys returns the sorted keys of all sources which can enumerate them.
func (r *Resolver) Keys() []string {
	return r.chain.Keys()
}

// Invalidate drops every cached entry.
// The next lookup of each key reads the chain again.
func (r *Resolver) Invalidate() {
	r.nocopy.Check()

	r.cache.Clear()
	r.logger.LogAttrs(context.Background(), slog.LevelDebug, "Resolved entries have been invalidated.")
}

// Get resolves the key as typ and returns the value as T.
//
// It returns an error wrapping [ErrTypeMismatch] if the converter for typ does not produce a T.
func Get[T any](resolver *Resolver, key string, typ Type) (T, error) { //nolint:ireturn
	var zero T

	value, err := resolver.ResolveAs(key, typ)
	if err != nil {
		return zero, err
	}

	return typed[T](value, typ)
}

// MustGet is like Get for configuration the application cannot run without.
// See [Resolver.RequireAs].
func MustGet[T any](resolver *Resolver, key string, typ Type) T { //nolint:ireturn
	value, err := typed[T](resolver.RequireAs(key, typ), typ)
	if err != nil {
		panic(err)
	}

	return value
}

func typed[T any](value any, typ Type) (T, error) { //nolint:ireturn
	result, ok := value.(T)
	if !ok {
		return result, fmt.Errorf("%w: %s produced %T, want %s", ErrTypeMismatch, typ, value, reflect.TypeFor[T]())
	}

	return result, nil
}

// lookup returns the entry of the key and whether it came from the cache.
// Concurrent first lookups of the same key share a single resolution.
func (r *Resolver) lookup(key string) (Entry, bool, error) {
	if r.noCache {
		entry, err := r.resolve(key, &resolving{})

		return entry, false, err
	}

	if entry, ok := r.cached(key); ok {
		return entry, true, nil
	}

	value, err, _ := r.group.Do(key, func() (any, error) {
		entry, err := r.resolve(key, &resolving{})
		if err != nil {
			return nil, err
		}

		return r.store(entry), nil
	})
	if err != nil {
		return Entry{}, false, err //nolint:wrapcheck
	}

	return value.(Entry), false, nil //nolint:forcetypeassert
}

func (r *Resolver) cached(key string) (Entry, bool) {
	if r.noCache {
		return Entry{}, false
	}

	value, ok := r.cache.Load(key)
	if !ok {
		return Entry{}, false
	}

	return value.(Entry), true //nolint:forcetypeassert
}

// store inserts the entry once. The first stored entry of a key wins.
func (r *Resolver) store(entry Entry) Entry {
	if r.noCache {
		return entry
	}

	actual, _ := r.cache.LoadOrStore(entry.Key, entry)

	return actual.(Entry) //nolint:forcetypeassert
}

func (r *Resolver) observe(key string, cached bool, err error) {
	if r.observer == nil {
		return
	}

	if err != nil {
		r.observer.Failed(key, err)

		return
	}
	r.observer.Resolved(key, cached)
}

func (r *Resolver) fatal(key string, err error) {
	var failure *Failure
	if !errors.As(err, &failure) {
		panic(err)
	}

	r.logger.LogAttrs(
		context.Background(), slog.LevelError,
		"Required configuration is not available.",
		slog.String("key", key),
		slog.String("kind", failure.Kind.String()),
		slog.Any("error", err),
	)
	panic(&RequiredError{Failure: failure})
}
