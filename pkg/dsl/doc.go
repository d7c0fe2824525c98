/*
Package dsl provides a fluent builder for constructing flows in Go code.

It is an alternative to writing flow sources in YAML or JSON and is
particularly useful for tests, generated flows and IDE autocompletion.
Every element starts from its catalog defaults, so ids come from the
builder's factory.

Example usage:

	b := dsl.New(catalog.New(catalog.Sequence("el")))

	b.Screen("WELCOME", "Welcome").
		Heading("Join the club").
		Input("full_name", "Your name").
		Next("DONE")

	b.Screen("DONE", "Thanks").
		If("${data.is_member}").
		Body("See you soon").
		Complete("Finish")

	screens := b.Build()
*/
package dsl
