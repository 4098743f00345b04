// Package engine translates a set of parameter overrides into ordered macro
// definition lines.
//
// Each override is processed in request order: the key is resolved against
// the catalog, a non-null value must carry the parameter's declared kind, the
// effective value (override or default) passes through the parameter's output
// mapper, and the result is rendered as
//
//	<macro keyword>(['<verilog name>'], <verilog value>)
//
// Translation is all or nothing. The first failing entry aborts the call and
// no partial result is returned. An Engine holds no mutable state and is safe
// for concurrent use.
package engine
