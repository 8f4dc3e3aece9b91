// Package analyze loads Go packages and extracts structured record
// descriptions for every type declaration carrying a structarray
// directive.
//
// The description is deliberately syntactic: field types are kept as
// the source spells them, so the validator can compare declared types
// and the generator can substitute them verbatim. Nothing here decides
// whether a record qualifies for generation; that is the validator's
// job.
package analyze
