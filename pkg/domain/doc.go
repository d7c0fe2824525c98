/*
Package domain contains the core models of the form suite.

It defines the closed element catalog, authored screens and the compiled
FlowDocument handed to the wire serializer. The package is pure: no I/O, no
persistence, no global state.

# Key Entities

  - Element: a sealed sum type over the catalog kinds (value structs embedding Base).
  - Screen: an ordered list of elements; its Footer is the only source of navigation.
  - FlowDocument: compiled output with its routing and data models.
  - Hooks: observability callbacks fired by the facade.
*/
package domain
