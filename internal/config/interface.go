package config

import "context"

// Loader is the interface for a format-specific catalog loader.
type Loader interface {
	// Load reads catalog definitions from the given paths and translates them
	// into the format-agnostic model. With no paths, the loader falls back to
	// its built-in catalog.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
