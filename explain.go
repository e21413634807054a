// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package strata

import (
	"strings"

	"github.com/nil-go/strata/internal/credential"
)

// Explain provides information about how Resolver resolves the value of the given key:
// the source that supplies it, the substituted value, and the values it overrides.
// It blurs sensitive information.
func (r *Resolver) Explain(key string) string {
	r.nocopy.Check()

	explanation := &strings.Builder{}
	defs := r.chain.definitions(key)
	if len(defs) == 0 {
		explanation.WriteString(key)
		explanation.WriteString(" has no configuration.\n\n")

		return explanation.String()
	}

	explanation.WriteString(key)
	entry, _, err := r.lookup(key)
	switch {
	case err != nil:
		explanation.WriteString(" has raw value[")
		explanation.WriteString(credential.Blur(key, defs[0].value))
		explanation.WriteString("] that is loaded by source[")
		explanation.WriteString(defs[0].source.String())
		explanation.WriteString("] but cannot be resolved: ")
		explanation.WriteString(err.Error())
		explanation.WriteString(".\n")
	case entry.Raw != entry.Value:
		explanation.WriteString(" has value[")
		explanation.WriteString(credential.Blur(key, entry.Value))
		explanation.WriteString("] expanded from [")
		explanation.WriteString(credential.Blur(key, entry.Raw))
		explanation.WriteString("] that is loaded by source[")
		explanation.WriteString(entry.Source.String())
		explanation.WriteString("].\n")
	default:
		explanation.WriteString(" has value[")
		explanation.WriteString(credential.Blur(key, entry.Value))
		explanation.WriteString("] that is loaded by source[")
		explanation.WriteString(entry.Source.String())
		explanation.WriteString("].\n")
	}

	if len(defs) > 1 {
		explanation.WriteString("Here are other value(source)s:\n")
		for _, def := range defs[1:] {
			explanation.WriteString("  - ")
			explanation.WriteString(credential.Blur(key, def.value))
			explanation.WriteString("(")
			explanation.WriteString(def.source.String())
			explanation.WriteString(")\n")
		}
	}
	explanation.WriteString("\n")

	return explanation.String()
}
