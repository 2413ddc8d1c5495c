package name

import (
	"sync"

	"github.com/dmitrymomot/mockd/pkg/dataset"
	"github.com/dmitrymomot/mockd/pkg/random"
)

// Generator produces names from a dataset. It is safe for concurrent use when
// its source is.
type Generator struct {
	src    random.Source
	tables dataset.Name
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source. Nil keeps the default.
func WithSource(src random.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithDataset sets the lookup tables. Nil keeps the embedded dataset.
func WithDataset(ds *dataset.Dataset) Option {
	return func(g *Generator) {
		if ds != nil {
			g.tables = ds.Name
		}
	}
}

// New returns a Generator using the embedded dataset and the default source
// unless overridden by opts.
func New(opts ...Option) *Generator {
	g := &Generator{
		src:    random.Default(),
		tables: dataset.Default().Name,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// First returns a first name.
func (g *Generator) First() string {
	return random.Pick(g.src, g.tables.First)
}

// Last returns a last name.
func (g *Generator) Last() string {
	return random.Pick(g.src, g.tables.Last)
}

// Prefix returns an honorific such as "Dr.".
func (g *Generator) Prefix() string {
	return random.Pick(g.src, g.tables.Prefix)
}

// Suffix returns a name suffix such as "Jr." or "PhD".
func (g *Generator) Suffix() string {
	return random.Pick(g.src, g.tables.Suffix)
}

var fullPatterns = []func(g *Generator) string{
	func(g *Generator) string { return g.First() + " " + g.Last() },
	func(g *Generator) string { return g.Prefix() + " " + g.First() + " " + g.Last() },
	func(g *Generator) string { return g.First() + " " + g.Last() + " " + g.Suffix() },
}

// Full returns a full name, optionally with a prefix or a suffix.
func (g *Generator) Full() string {
	return random.Element(g.src, fullPatterns)(g)
}

var std = sync.OnceValue(func() *Generator { return New() })

// First returns a first name.
func First() string { return std().First() }

// Last returns a last name.
func Last() string { return std().Last() }

// Prefix returns an honorific such as "Dr.".
func Prefix() string { return std().Prefix() }

// Suffix returns a name suffix such as "Jr." or "PhD".
func Suffix() string { return std().Suffix() }

// Full returns a full name.
func Full() string { return std().Full() }
