// Package random is the generation engine shared by every category package
// (address, company, name). It provides four primitives:
//
//   - Int and Float return a uniformly distributed value from a closed range.
//   - Pick and Element select a random member of a lookup table.
//   - Numerify, Lexify and Bothify fill placeholder characters in a template.
//   - Domain validates a requested sub-range against absolute bounds and falls
//     back to the unconstrained generator when the request is unusable.
//
// # Random sources
//
// All functions take a Source. Passing nil selects Default, which is backed by
// the math/rand/v2 top-level functions and is safe for concurrent use without
// external locking. NewSeeded returns a deterministic source guarded by a mutex,
// handy for reproducible assertions in tests:
//
//	src := random.NewSeeded(42)
//	zip := random.Numerify(src, "#####") // e.g. "80531"
//
// # Contract violations
//
// Inverted ranges passed to Int or Float and empty tables passed to Pick are
// programming errors in the calling package. They panic, just like
// math/rand/v2.IntN does for a non-positive argument. Callers that accept ranges
// from user input must validate them first, which is what Domain.InRange does.
package random
