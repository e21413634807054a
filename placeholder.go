// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package strata

import (
	"errors"
	"slices"
	"strings"
)

// resolving holds the keys being resolved by the callers, outermost first.
type resolving struct {
	keys []string
	seen map[string]struct{}
}

func (t *resolving) push(key string) {
	if t.seen == nil {
		t.seen = make(map[string]struct{})
	}
	t.keys = append(t.keys, key)
	t.seen[key] = struct{}{}
}

func (t *resolving) pop() {
	key := t.keys[len(t.keys)-1]
	t.keys = t.keys[:len(t.keys)-1]
	delete(t.seen, key)
}

func (t *resolving) contains(key string) bool {
	_, ok := t.seen[key]

	return ok
}

// path returns a copy of the keys followed by key.
func (t *resolving) path(key string) []string {
	path := make([]string, 0, len(t.keys)+1)

	return append(append(path, t.keys...), key)
}

// resolve looks up the key through the chain and expands its placeholders.
func (r *Resolver) resolve(key string, trail *resolving) (Entry, error) {
	raw, source, ok := r.chain.Lookup(key)
	if !ok {
		return Entry{}, &Failure{
			Kind:    MissingKey,
			Key:     key,
			Path:    trail.path(key),
			Sources: r.chain.origins(),
		}
	}

	trail.push(key)
	defer trail.pop()

	value, err := r.expand(raw, trail)
	if err != nil {
		return Entry{}, err
	}

	return Entry{Key: key, Value: value, Raw: raw, Source: source}, nil
}

// expand substitutes the placeholders in raw from left to right.
// Substituted text is not scanned again, and an opening delimiter
// without closing delimiter is kept as literal text.
func (r *Resolver) expand(raw string, trail *resolving) (string, error) {
	if !strings.Contains(raw, r.prefix) {
		return raw, nil
	}

	var builder strings.Builder
	rest := raw
	for {
		start := strings.Index(rest, r.prefix)
		if start < 0 {
			break
		}
		nameStart := start + len(r.prefix)
		end := strings.Index(rest[nameStart:], r.suffix)
		if end < 0 {
			break
		}
		nameEnd := nameStart + end
		tokenEnd := nameEnd + len(r.suffix)

		value, err := r.reference(rest[nameStart:nameEnd], rest[start:tokenEnd], trail)
		if err != nil {
			return "", err
		}
		builder.WriteString(rest[:start])
		builder.WriteString(value)
		rest = rest[tokenEnd:]
	}
	builder.WriteString(rest)

	return builder.String(), nil
}

// reference resolves the key named by a placeholder token.
func (r *Resolver) reference(ref, token string, trail *resolving) (string, error) {
	if trail.contains(ref) {
		return "", &Failure{
			Kind:    CircularPlaceholder,
			Key:     trail.keys[0],
			Ref:     ref,
			Token:   token,
			Path:    trail.path(ref),
			Sources: r.chain.origins(),
		}
	}

	// A cached entry resolved without cycle on its own, so it cannot close a cycle with the trail.
	if entry, ok := r.cached(ref); ok {
		return entry.Value, nil
	}

	entry, err := r.resolve(ref, trail)
	if err != nil {
		var failure *Failure
		if errors.As(err, &failure) && failure.Kind == MissingKey {
			return "", &Failure{
				Kind:    UnresolvedPlaceholder,
				Key:     trail.keys[0],
				Ref:     ref,
				Token:   token,
				Path:    failure.Path,
				Sources: failure.Sources,
			}
		}

		return "", err
	}

	return r.store(entry).Value, nil
}

// Cycle returns the keys forming the cycle of a CircularPlaceholder failure,
// starting and ending with the repeated key. It returns nil for other kinds.
func (f *Failure) Cycle() []string {
	if f.Kind != CircularPlaceholder || len(f.Path) == 0 {
		return nil
	}

	repeated := f.Path[len(f.Path)-1]

	return f.Path[slices.Index(f.Path, repeated):]
}
