// Package registry provides the vocabulary the compiler understands.
//
// The Registry stores the mappings between the type tokens written in goal
// model documents (e.g., "istar.Goal", "istar.AndRefinementLink") and the
// vertex and edge kinds of the model, together with the open set of domain
// types that variable declarations may name.
//
// During application startup the registry is populated with the builtin
// vocabulary, extended from configuration and definitions, and then validated
// so that a document can never be compiled against an incomplete vocabulary.
package registry
