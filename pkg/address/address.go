package address

import (
	"fmt"

	"github.com/dmitrymomot/mockd/pkg/dataset"
	"github.com/dmitrymomot/mockd/pkg/name"
	"github.com/dmitrymomot/mockd/pkg/random"
)

// Record holds one generated address. Address is assembled from the Street,
// City, State and Zip fields of the same record.
type Record struct {
	Address   string  `json:"address"`
	Street    string  `json:"street"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Zip       string  `json:"zip"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Generator produces address data from a dataset.
type Generator struct {
	src    random.Source
	tables dataset.Address
	names  *name.Generator
}

// Option configures a Generator.
type Option func(*config)

type config struct {
	src random.Source
	ds  *dataset.Dataset
}

// WithSource sets the random source. Nil keeps the default.
func WithSource(src random.Source) Option {
	return func(c *config) {
		if src != nil {
			c.src = src
		}
	}
}

// WithDataset sets the lookup tables, including the name tables used for
// cities. Nil keeps the embedded dataset.
func WithDataset(ds *dataset.Dataset) Option {
	return func(c *config) {
		if ds != nil {
			c.ds = ds
		}
	}
}

// New returns a Generator using the embedded dataset and the default source
// unless overridden by opts.
func New(opts ...Option) *Generator {
	c := &config{src: random.Default()}
	for _, opt := range opts {
		opt(c)
	}
	if c.ds == nil {
		c.ds = dataset.Default()
	}
	return &Generator{
		src:    c.src,
		tables: c.ds.Address,
		names:  name.New(name.WithSource(c.src), name.WithDataset(c.ds)),
	}
}

// Info returns a complete address record.
func (g *Generator) Info() Record {
	r := Record{
		Street:    g.Street(),
		City:      g.City(),
		State:     g.State(),
		Zip:       g.Zip(),
		Country:   g.Country(),
		Latitude:  g.Latitude(),
		Longitude: g.Longitude(),
	}
	r.Address = fmt.Sprintf("%s, %s, %s %s", r.Street, r.City, r.State, r.Zip)
	return r
}

var streetPatterns = []func(g *Generator) string{
	func(g *Generator) string {
		return g.StreetNumber() + " " + g.StreetPrefix() + " " + g.StreetName() + " " + g.StreetSuffix()
	},
	func(g *Generator) string {
		return g.StreetNumber() + " " + g.StreetName() + " " + g.StreetSuffix()
	},
}

// Street returns a street line such as "3155 Port Kansas mouth".
func (g *Generator) Street() string {
	return random.Element(g.src, streetPatterns)(g)
}

// StreetNumber returns a house number of three to five digits.
func (g *Generator) StreetNumber() string {
	return random.Numerify(g.src, random.Pick(g.src, g.tables.Number))
}

// StreetPrefix returns a word that can open a street name, e.g. "North".
func (g *Generator) StreetPrefix() string {
	return random.Pick(g.src, g.tables.StreetPrefix)
}

// StreetName returns the main part of a street name. Names are drawn from the
// state table.
func (g *Generator) StreetName() string {
	return random.Pick(g.src, g.tables.State)
}

// StreetSuffix returns a word that can close a street name, e.g. "view".
func (g *Generator) StreetSuffix() string {
	return random.Pick(g.src, g.tables.StreetSuffix)
}

var cityPatterns = []func(g *Generator) string{
	func(g *Generator) string { return g.names.First() + g.StreetSuffix() },
	func(g *Generator) string { return g.names.Last() + g.StreetSuffix() },
	func(g *Generator) string { return g.StreetPrefix() + " " + g.names.Last() },
}

// City returns a city name.
func (g *Generator) City() string {
	return random.Element(g.src, cityPatterns)(g)
}

// State returns a US state name.
func (g *Generator) State() string {
	return random.Pick(g.src, g.tables.State)
}

// StateAbr returns a US state abbreviation.
func (g *Generator) StateAbr() string {
	return random.Pick(g.src, g.tables.StateAbr)
}

// Zip returns a zip code.
func (g *Generator) Zip() string {
	return random.Numerify(g.src, random.Pick(g.src, g.tables.Zip))
}

// Country returns a country name.
func (g *Generator) Country() string {
	return random.Pick(g.src, g.tables.Country)
}

// CountryAbr returns a two-letter country code.
func (g *Generator) CountryAbr() string {
	return random.Pick(g.src, g.tables.CountryAbr)
}

// Latitude returns a latitude in [-90, 90].
func (g *Generator) Latitude() float64 {
	return random.Latitude.Random(g.src)
}

// LatitudeInRange returns a latitude in [min, max], or any latitude when the
// range is not valid.
func (g *Generator) LatitudeInRange(min, max float64) float64 {
	return random.Latitude.InRange(g.src, min, max)
}

// Longitude returns a longitude in [-180, 180].
func (g *Generator) Longitude() float64 {
	return random.Longitude.Random(g.src)
}

// LongitudeInRange returns a longitude in [min, max], or any longitude when
// the range is not valid.
func (g *Generator) LongitudeInRange(min, max float64) float64 {
	return random.Longitude.InRange(g.src, min, max)
}
