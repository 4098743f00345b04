// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses catalog files, translates `parameter` blocks into the
// format-agnostic model, and converts cty default values into typed
// parameter values. It also decodes the optional server configuration file.
package hcl
