// Package config defines the format-agnostic input model of the compiler: the
// raw node and link records of a goal model document, along with the Loader
// interface that format-specific readers implement.
//
// The `config.Tree` is the single source of truth for the `builder` package.
// Concrete loaders, such as for the editor JSON export or HCL, are provided in
// separate packages.
package config
