package config

import "context"

// Loader is the interface for a format-specific goal model reader.
type Loader interface {
	// Load reads the document at path and translates it into the
	// format-agnostic Tree.
	Load(ctx context.Context, path string) (*Tree, error)
}
