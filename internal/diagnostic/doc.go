// Package diagnostic provides structured errors, warnings, and notes
// collected while scanning packages for annotated records.
//
// The validator itself stops at the first failed check for a record;
// this package is the aggregation layer above it, so a single scan can
// report the status of every annotated record in a package at once.
package diagnostic
