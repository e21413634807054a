// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package strata

import (
	"errors"
	"strconv"
	"strings"
)

// Kind classifies a data-level [Failure].
type Kind int

const (
	// MissingKey means no source in the chain defines the key.
	MissingKey Kind = iota + 1
	// CircularPlaceholder means the key's placeholders refer back to a key already being resolved.
	CircularPlaceholder
	// UnresolvedPlaceholder means a placeholder refers to a key no source defines.
	UnresolvedPlaceholder
	// ConversionError means the resolved value does not satisfy the grammar of the requested type.
	ConversionError
)

func (k Kind) String() string {
	switch k {
	case MissingKey:
		return "missing key"
	case CircularPlaceholder:
		return "circular placeholder"
	case UnresolvedPlaceholder:
		return "unresolved placeholder"
	case ConversionError:
		return "conversion error"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Failure describes why a key could not be resolved or converted.
// It is returned as the error value of lookups and never panics by itself.
//
// Use errors.Is with [ErrMissingKey], [ErrCircularPlaceholder], [ErrUnresolvedPlaceholder]
// or [ErrConversion] to test the kind, or errors.As to inspect the details.
type Failure struct {
	Kind Kind
	// Key is the key the caller asked for.
	Key string
	// Ref is the key referenced by the offending placeholder (UnresolvedPlaceholder).
	Ref string
	// Token is the placeholder text as it appears in the raw value (UnresolvedPlaceholder).
	Token string
	// Path is the chain of keys followed from Key to the failure.
	// For CircularPlaceholder it ends with the repeated key, e.g. [a b a].
	Path []string
	// Value is the resolved string that failed to convert (ConversionError).
	Value string
	// Type is the requested type (ConversionError).
	Type Type
	// Sources lists the origins inspected, highest precedence first.
	Sources []string
	// Err is the underlying conversion error, if any.
	Err error
}

func (f *Failure) Error() string {
	var builder strings.Builder
	builder.WriteString("key ")
	builder.WriteString(strconv.Quote(f.Key))
	builder.WriteString(": ")

	switch f.Kind {
	case MissingKey:
		builder.WriteString("not defined in any source [")
		builder.WriteString(strings.Join(f.Sources, ", "))
		builder.WriteString("]")
	case CircularPlaceholder:
		builder.WriteString("circular placeholder reference ")
		builder.WriteString(strings.Join(f.Path, " -> "))
	case UnresolvedPlaceholder:
		builder.WriteString("placeholder ")
		builder.WriteString(strconv.Quote(f.Token))
		builder.WriteString(" references undefined key ")
		builder.WriteString(strconv.Quote(f.Ref))
		if len(f.Path) > 1 {
			builder.WriteString(" (via ")
			builder.WriteString(strings.Join(f.Path, " -> "))
			builder.WriteString(")")
		}
	case ConversionError:
		builder.WriteString("cannot convert ")
		builder.WriteString(strconv.Quote(f.Value))
		builder.WriteString(" to ")
		builder.WriteString(string(f.Type))
		if f.Err != nil {
			builder.WriteString(": ")
			builder.WriteString(f.Err.Error())
		}
	default:
		builder.WriteString(f.Kind.String())
	}

	return builder.String()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Is reports whether target is the sentinel error of the failure's kind.
func (f *Failure) Is(target error) bool {
	switch f.Kind {
	case MissingKey:
		return target == ErrMissingKey //nolint:errorlint,err113
	case CircularPlaceholder:
		return target == ErrCircularPlaceholder //nolint:errorlint,err113
	case UnresolvedPlaceholder:
		return target == ErrUnresolvedPlaceholder //nolint:errorlint,err113
	case ConversionError:
		return target == ErrConversion //nolint:errorlint,err113
	default:
		return false
	}
}

// RequiredError is the panic value of [Resolver.Require] and [Resolver.RequireAs].
type RequiredError struct {
	Failure *Failure
}

func (e *RequiredError) Error() string {
	return "required configuration: " + e.Failure.Error()
}

func (e *RequiredError) Unwrap() error {
	return e.Failure
}

// Sentinels matched by [Failure.Is].
var (
	ErrMissingKey            = errors.New("missing key")
	ErrCircularPlaceholder   = errors.New("circular placeholder")
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")
	ErrConversion            = errors.New("conversion error")
)

// Programming errors. They point at a defect in the calling code
// and are never wrapped in a [Failure].
var (
	ErrEmptyChain    = errors.New("source chain has no sources")
	ErrNilSource     = errors.New("source chain contains a nil source")
	ErrUnknownType   = errors.New("no converter registered for type")
	ErrDuplicateType = errors.New("converter already registered for type")
	ErrTypeMismatch  = errors.New("converter returned unexpected type")
)

// ErrKeyConflict is returned by [Resolver.Unmarshal] when a key holds a value
// and also has nested keys under it.
var ErrKeyConflict = errors.New("key has both a value and nested keys")
