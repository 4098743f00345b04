// Package config defines the format-agnostic model of the parameter catalog,
// along with the Loader interface for reading it from a concrete source.
//
// The config.Parameter is the single description of a configuration
// parameter shared by the registry, the translation engine, and the listing
// endpoint. Concrete loaders, such as the HCL one, live in separate packages.
package config
