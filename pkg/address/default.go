package address

import "sync"

var std = sync.OnceValue(func() *Generator { return New() })

// Info returns a complete address record.
func Info() Record { return std().Info() }

// Street returns a street line.
func Street() string { return std().Street() }

// StreetNumber returns a house number.
func StreetNumber() string { return std().StreetNumber() }

// StreetPrefix returns a street prefix such as "North".
func StreetPrefix() string { return std().StreetPrefix() }

// StreetName returns a street name.
func StreetName() string { return std().StreetName() }

// StreetSuffix returns a street suffix such as "view".
func StreetSuffix() string { return std().StreetSuffix() }

// City returns a city name.
func City() string { return std().City() }

// State returns a US state name.
func State() string { return std().State() }

// StateAbr returns a US state abbreviation.
func StateAbr() string { return std().StateAbr() }

// Zip returns a zip code.
func Zip() string { return std().Zip() }

// Country returns a country name.
func Country() string { return std().Country() }

// CountryAbr returns a two-letter country code.
func CountryAbr() string { return std().CountryAbr() }

// Latitude returns a latitude in [-90, 90].
func Latitude() float64 { return std().Latitude() }

// LatitudeInRange returns a latitude in [min, max], falling back to Latitude
// for invalid ranges.
func LatitudeInRange(min, max float64) float64 { return std().LatitudeInRange(min, max) }

// Longitude returns a longitude in [-180, 180].
func Longitude() float64 { return std().Longitude() }

// LongitudeInRange returns a longitude in [min, max], falling back to
// Longitude for invalid ranges.
func LongitudeInRange(min, max float64) float64 { return std().LongitudeInRange(min, max) }
