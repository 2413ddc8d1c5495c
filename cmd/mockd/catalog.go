package main

import (
	"github.com/dmitrymomot/mockd/pkg/address"
	"github.com/dmitrymomot/mockd/pkg/company"
	"github.com/dmitrymomot/mockd/pkg/dataset"
	"github.com/dmitrymomot/mockd/pkg/name"
	"github.com/dmitrymomot/mockd/pkg/random"
)

// catalog maps category and field names to generators.
type catalog map[string]map[string]func() any

// bounds is the range requested for the *_in_range fields.
type bounds struct {
	min, max float64
}

func newCatalog(ds *dataset.Dataset, src random.Source, b bounds) catalog {
	a := address.New(address.WithDataset(ds), address.WithSource(src))
	c := company.New(company.WithDataset(ds), company.WithSource(src))
	n := name.New(name.WithDataset(ds), name.WithSource(src))

	return catalog{
		"address": {
			"info":          func() any { return a.Info() },
			"street":        str(a.Street),
			"street_number": str(a.StreetNumber),
			"street_prefix": str(a.StreetPrefix),
			"street_name":   str(a.StreetName),
			"street_suffix": str(a.StreetSuffix),
			"city":          str(a.City),
			"state":         str(a.State),
			"state_abr":     str(a.StateAbr),
			"zip":           str(a.Zip),
			"country":       str(a.Country),
			"country_abr":   str(a.CountryAbr),
			"latitude":      func() any { return a.Latitude() },
			"longitude":     func() any { return a.Longitude() },
			"latitude_in_range": func() any {
				return a.LatitudeInRange(b.min, b.max)
			},
			"longitude_in_range": func() any {
				return a.LongitudeInRange(b.min, b.max)
			},
		},
		"company": {
			"company":      str(c.Company),
			"suffix":       str(c.Suffix),
			"buzzword":     str(c.Buzzword),
			"bs":           str(c.BS),
			"catch_phrase": str(c.CatchPhrase),
		},
		"name": {
			"first":  str(n.First),
			"last":   str(n.Last),
			"prefix": str(n.Prefix),
			"suffix": str(n.Suffix),
			"full":   str(n.Full),
		},
	}
}

func str(fn func() string) func() any {
	return func() any { return fn() }
}
