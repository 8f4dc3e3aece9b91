// Package bind derives the complete operation set for a validated
// record shape.
//
// The operations are not hand-enumerated emitters: they are rows of a
// declarative table (direction x representation x ownership x
// mutability x capability), and Bind lowers that table onto a concrete
// RecordShape. One shape always maps to exactly one operation set, in
// one order. Rows that Go cannot distinguish (a pointer is always
// writable, so immutable and mutable reference forms coincide)
// collapse onto a single Go symbol during lowering, and the collapse
// is recorded on the bound operation.
package bind
