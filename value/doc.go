// Package value defines the tagged value model the chainpack codec reads
// and writes: a discriminated union over Null, Bool, Int, UInt, Double,
// Decimal, Blob, String, DateTime, List, Map, IMap and Array, each
// optionally carrying a non-negative-integer-keyed metadata map.
//
// A Value is immutable by convention: every method that would logically
// mutate a Value instead returns a new one. Deep copies go through Clone.
package value
