// Package mockd is a mock-data generation library for test fixtures.
//
// Values come from category packages, each exposing plain functions that
// return plausible fake data:
//
//   - pkg/address: streets, cities, states, zip codes, countries, coordinates.
//   - pkg/company: company names, suffixes, buzzwords, business jargon.
//   - pkg/name:    first, last and full person names.
//
// They share the generation engine in pkg/random (bounded random numbers,
// table selection, digit templates, range-validated coordinates) and the
// lookup tables in pkg/dataset, which ship as embedded YAML and can be
// replaced at run time.
//
//	street := address.Street() // "1128 South North Dakota borough"
//	corp := company.Company()  // "Rowe-Schoen"
//
// Every function returns a value; none returns an error. Generators are safe
// for concurrent use. For reproducible test assertions build a generator with
// a seeded source:
//
//	gen := address.New(address.WithSource(random.NewSeeded(1)))
//
// The cmd/mockd command prints values from the command line.
package mockd
