// Package registry provides the parameter catalog: the ordered, immutable set
// of parameter definitions every translation is resolved against.
//
// A Registry is built once from a loaded config.Model and validated before
// use: duplicate JSON keys, defaults whose kind differs from the declared
// input type, unknown or mismatched output mappers, and malformed validation
// rules are all rejected together. After construction it is never mutated,
// so it may be shared by any number of concurrent readers without locking.
package registry
