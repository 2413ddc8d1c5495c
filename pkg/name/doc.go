// Package name generates person names: first, last, honorific prefix,
// generational or professional suffix, and full names.
//
// The package-level functions use a shared generator backed by the embedded
// dataset and the default random source. Create a Generator with New to use a
// different dataset or a deterministic source:
//
//	gen := name.New(name.WithSource(random.NewSeeded(1)))
//	gen.Full() // "Dr. Amelia Schoen"
package name
