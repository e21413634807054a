// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package parser parses configuration documents into flat keys for file based sources.
//
// Structured documents (YAML, TOML, JSON) are flattened: nested keys are joined by `.`
// and lists of scalars are joined by `,`, so `{server: {hosts: [a, b]}}`
// is parsed as `server.hosts=a,b`.
package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/magiconair/properties"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/nil-go/strata/internal/maps"
)

// Parser parses a document into keys and raw values.
type Parser func(data []byte) (map[string]string, error)

// Properties parses a Java properties document.
// Placeholders are kept as they are for the Resolver to expand.
func Properties(data []byte) (map[string]string, error) {
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse properties: %w", err)
	}

	return props.Map(), nil
}

// Sections returns a Parser for documents split in `[section]`s.
//
// The `[Default]` section is always loaded, then the keys of the given context section
// override it. Section names are case-insensitive and keys outside both are ignored.
// A line without `=` is an error. Text after `#` is a comment; `;` and quotes
// inside a value are kept as they are.
func Sections(context string) Parser {
	return func(data []byte) (map[string]string, error) {
		file, err := ini.LoadSources(
			ini.LoadOptions{
				InsensitiveSections:     true,
				KeyValueDelimiters:      "=",
				IgnoreInlineComment:     true,
				IgnoreContinuation:      true,
				PreserveSurroundedQuote: true,
			},
			data,
		)
		if err != nil {
			return nil, fmt.Errorf("parse sections: %w", err)
		}

		values := make(map[string]string)
		for _, name := range []string{defaultSection, context} {
			if name == "" {
				continue
			}
			section, err := file.GetSection(name)
			if err != nil {
				continue // A missing section has no keys.
			}
			for key, value := range section.KeysHash() {
				if i := strings.IndexByte(value, '#'); i >= 0 {
					value = strings.TrimSpace(value[:i])
				}
				values[key] = value
			}
		}

		return values, nil
	}
}

// Contextual returns a Parser which parses the document with Sections(context)
// if it has any `[section]` line, otherwise with Properties.
func Contextual(context string) Parser {
	sections := Sections(context)

	return func(data []byte) (map[string]string, error) {
		for _, line := range bytes.Split(data, []byte("\n")) {
			line = bytes.TrimSpace(line)
			if bytes.HasPrefix(line, []byte("[")) && bytes.HasSuffix(line, []byte("]")) {
				return sections(data)
			}
		}

		return Properties(data)
	}
}

// YAML parses a YAML document.
func YAML(data []byte) (map[string]string, error) {
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	return flatten(values)
}

// TOML parses a TOML document.
func TOML(data []byte) (map[string]string, error) {
	var values map[string]any
	if err := toml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}

	return flatten(values)
}

// JSON parses a JSON document. Numbers keep their literal text.
func JSON(data []byte) (map[string]string, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var values map[string]any
	if err := decoder.Decode(&values); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	return flatten(values)
}

// ByExtension returns the Parser for the extension of the given path:
// YAML for `.yaml` and `.yml`, TOML for `.toml`, JSON for `.json`,
// Contextual without context for `.ini`, `.cfg` and `.conf`,
// and Properties for anything else.
func ByExtension(path string) Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	case ".toml":
		return TOML
	case ".json":
		return JSON
	case ".ini", ".cfg", ".conf":
		return Contextual("")
	default:
		return Properties
	}
}

func flatten(values map[string]any) (map[string]string, error) {
	flat, err := maps.Flatten(values, ".", ",")
	if err != nil {
		return nil, fmt.Errorf("flatten: %w", err)
	}

	return flat, nil
}

const defaultSection = "Default"
