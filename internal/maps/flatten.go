// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Flatten converts a nested document into flat keys joined by delimiter.
//
// Scalars are formatted as strings. A list of scalars is joined by listDelimiter,
// while a list holding maps or lists is flattened with the element index as key segment.
// A nil value is an empty string.
func Flatten(src map[string]any, delimiter, listDelimiter string) (map[string]string, error) {
	dst := make(map[string]string)
	if err := flatten(dst, "", src, delimiter, listDelimiter); err != nil {
		return nil, err
	}

	return dst, nil
}

func flatten(dst map[string]string, key string, value any, delimiter, listDelimiter string) error {
	join := func(sub string) string {
		if key == "" {
			return sub
		}

		return key + delimiter + sub
	}

	switch v := value.(type) {
	case map[string]any:
		for k, val := range v {
			if err := flatten(dst, join(k), val, delimiter, listDelimiter); err != nil {
				return err
			}
		}
	case map[any]any:
		for k, val := range v {
			if err := flatten(dst, join(fmt.Sprint(k)), val, delimiter, listDelimiter); err != nil {
				return err
			}
		}
	case []map[string]any:
		for i, val := range v {
			if err := flatten(dst, join(strconv.Itoa(i)), val, delimiter, listDelimiter); err != nil {
				return err
			}
		}
	case []any:
		if !scalars(v) {
			for i, val := range v {
				if err := flatten(dst, join(strconv.Itoa(i)), val, delimiter, listDelimiter); err != nil {
					return err
				}
			}

			return nil
		}

		elements, err := cast.ToStringSliceE(v)
		if err != nil {
			return fmt.Errorf("format %s: %w", key, err)
		}
		dst[key] = strings.Join(elements, listDelimiter)
	case nil:
		dst[key] = ""
	case []string:
		dst[key] = strings.Join(v, listDelimiter)
	default:
		if reflected := reflect.ValueOf(v); reflected.Kind() == reflect.Slice && reflected.Type().Elem().Kind() != reflect.Uint8 {
			elements := make([]any, reflected.Len())
			for i := range elements {
				elements[i] = reflected.Index(i).Interface()
			}

			return flatten(dst, key, elements, delimiter, listDelimiter)
		}

		formatted, err := cast.ToStringE(v)
		if err != nil {
			return fmt.Errorf("format %s: %w", key, err)
		}
		dst[key] = formatted
	}

	return nil
}

func scalars(values []any) bool {
	for _, value := range values {
		switch value.(type) {
		case map[string]any, map[any]any, []any, []map[string]any:
			return false
		}
	}

	return true
}
