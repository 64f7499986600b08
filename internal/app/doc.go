// Package app contains the core application logic. It wires loaders, the
// graph builder and the validation passes into a compile pipeline and runs
// it over documents, decoupled from any specific entrypoint like a CLI.
package app
