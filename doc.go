// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

/*
Package strata resolves configuration from an ordered list of sources.

A [Chain] holds the sources, such as files, environment variables or in-memory overrides,
highest precedence first. The first source defining a key wins, even with an empty value.

A [Resolver] reads a Chain lazily per key. It substitutes placeholders like `${server.host}`
with the resolved value of the referenced key, and converts the result into a [Type]
with the registered [Converter]. Lookups report problems as a [*Failure]:
a missing key, a circular or unresolved placeholder, or a value that does not convert.

	properties, err := file.New("app.properties")
	if err != nil {
		// Handle error here.
	}
	chain, err := strata.NewChain(env.New(), properties)
	if err != nil {
		// Handle error here.
	}
	resolver := strata.New(chain)
	port, err := strata.Get[int](resolver, "server.port", strata.Int)

There is no package-level Resolver. Pass it explicitly or through [NewContext].
*/
package strata
