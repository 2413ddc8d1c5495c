// Package address generates mock postal and geographic data: streets, cities,
// US states, zip codes, countries and coordinates.
//
// Composite values pick one of a few fixed shapes at random. A street is either
// "number prefix name suffix" or "number name suffix"; a city is one of
// "<first name><suffix>", "<last name><suffix>" or "<prefix> <last name>".
//
//	address.Street()                   // "1128 South North Dakota borough"
//	address.City()                     // "Schmelerburgh"
//	address.LatitudeInRange(-30, 30)   // -18.35571
//	info := address.Info()             // every field at once
//
// # Coordinate ranges
//
// LatitudeInRange and LongitudeInRange never fail. If the requested range is
// inverted or leaves the valid domain ([-90, 90] and [-180, 180]) it is
// ignored and an unconstrained coordinate of the same kind is returned.
package address
