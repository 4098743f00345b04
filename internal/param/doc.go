// Package param defines the typed values a configuration parameter can hold.
//
// A Value is a closed sum type with one variant per input kind (Integer,
// Double, String, Boolean, Binary). Every variant knows its Kind and its
// canonical Verilog rendering, which is the only text ever inserted into a
// generated macro line. Values are built either directly, from catalog
// defaults, or from untyped request primitives through Parse, which applies a
// fixed, ordered dispatch over the primitive's kind.
package param
