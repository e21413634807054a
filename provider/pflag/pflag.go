// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package pflag reads configuration from flags defined by [spf13/pflag].
//
// PFlag takes a snapshot of the flags whose names start with the given prefix
// when it is created. Only flags changed on the command line are defined,
// unless IncludeDefaults also defines unchanged flags with non-zero default value.
// The flag name is the key, and slice values are joined with `,`.
//
// [spf13/pflag]: https://github.com/spf13/pflag
package pflag

import (
	"flag"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// PFlag is a Source that reads configuration from flags defined by [spf13/pflag].
//
// To create a new PFlag, call [New].
type PFlag struct {
	prefix          string
	set             *pflag.FlagSet
	includeDefaults bool

	values map[string]string
}

// New creates a PFlag with the given Option(s).
func New(opts ...Option) *PFlag {
	option := &options{}
	for _, opt := range opts {
		opt(option)
	}
	if option.set == nil {
		if !pflag.Parsed() {
			pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
			pflag.Parse()
		}
		option.set = pflag.CommandLine
	}

	option.values = make(map[string]string)
	option.set.VisitAll(
		func(flag *pflag.Flag) {
			if !strings.HasPrefix(flag.Name, option.prefix) {
				return
			}
			// Skip unchanged flags to avoid overriding values of other sources.
			if !flag.Changed && (!option.includeDefaults || isZero(flagVal(option.set, flag))) {
				return
			}

			if slice, ok := flag.Value.(pflag.SliceValue); ok {
				option.values[flag.Name] = strings.Join(slice.GetSlice(), ",")

				return
			}
			option.values[flag.Name] = flag.Value.String()
		},
	)

	return (*PFlag)(option)
}

func (f *PFlag) Lookup(key string) (string, bool) {
	value, ok := f.values[key]

	return value, ok
}

func (f *PFlag) Keys() []string {
	return slices.Sorted(maps.Keys(f.values))
}

func (f *PFlag) String() string {
	if f.prefix == "" {
		return "pflag"
	}

	return "pflag:" + f.prefix
}

func isZero(value any) bool {
	reflected := reflect.ValueOf(value)
	switch {
	case !reflected.IsValid():
		return true
	case reflected.Kind() == reflect.Slice || reflected.Kind() == reflect.Map:
		return reflected.Len() == 0
	default:
		return reflected.IsZero()
	}
}

// flagVal returns the typed value of the flag, or its string form for unknown types.
//
//nolint:cyclop
func flagVal(set *pflag.FlagSet, flag *pflag.Flag) any {
	var (
		value any
		err   error
	)
	switch flag.Value.Type() {
	case "int":
		value, err = set.GetInt(flag.Name)
	case "uint":
		value, err = set.GetUint(flag.Name)
	case "int64":
		value, err = set.GetInt64(flag.Name)
	case "float64":
		value, err = set.GetFloat64(flag.Name)
	case "bool":
		value, err = set.GetBool(flag.Name)
	case "duration":
		value, err = set.GetDuration(flag.Name)
	case "count":
		value, err = set.GetCount(flag.Name)
	case "string":
		value, err = set.GetString(flag.Name)
	case "stringSlice":
		value, err = set.GetStringSlice(flag.Name)
	case "stringArray":
		value, err = set.GetStringArray(flag.Name)
	case "intSlice":
		value, err = set.GetIntSlice(flag.Name)
	case "stringToString":
		value, err = set.GetStringToString(flag.Name)
	default:
		return flag.Value.String()
	}
	if err != nil {
		return flag.Value.String()
	}

	return value
}
