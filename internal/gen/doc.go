// Package gen emits the generated accessor files for validated records.
//
// Generation renders one text/template per operation and runs the
// assembled file through go/format, so the committed output is always
// gofmt-clean.
//
// Emitted declarations per record:
//   - Compile-time size proof (non-generic records)
//   - Array/Slice views sharing the record's memory
//   - Owned array conversions relabeling the record's bit pattern
//   - Reference conversions in both directions
//   - The length-guarded slice-to-record conversion
package gen
