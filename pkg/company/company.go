package company

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/mockd/pkg/dataset"
	"github.com/dmitrymomot/mockd/pkg/name"
	"github.com/dmitrymomot/mockd/pkg/random"
)

// Generator produces company data from a dataset.
type Generator struct {
	src    random.Source
	tables dataset.Company
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

// WithDataset sets the lookup tables. Nil keeps the embedded dataset.
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
		tables: c.ds.Company,
		names:  name.New(name.WithSource(c.src), name.WithDataset(c.ds)),
	}
}

var companyPatterns = []func(g *Generator) string{
	func(g *Generator) string {
		return g.names.Last() + ", " + g.names.Last() + " and " + g.names.Last()
	},
	func(g *Generator) string { return g.names.Last() + "-" + g.names.Last() },
	func(g *Generator) string { return g.names.Last() + " " + g.Suffix() },
}

// Company returns a company name such as "Rowe-Schoen" or "Kuhn LLC".
func (g *Generator) Company() string {
	return random.Element(g.src, companyPatterns)(g)
}

// Suffix returns a legal suffix such as "Inc".
func (g *Generator) Suffix() string {
	return random.Pick(g.src, g.tables.Suffix)
}

// Buzzword returns a marketing adjective.
func (g *Generator) Buzzword() string {
	return random.Pick(g.src, g.tables.Buzzwords)
}

// BS returns a piece of business jargon.
func (g *Generator) BS() string {
	return random.Pick(g.src, g.tables.BS)
}

// CatchPhrase returns a title-cased buzzword followed by jargon.
// Acronyms in the tables such as "ROI" keep their casing.
func (g *Generator) CatchPhrase() string {
	// cases.Caser keeps state, so each call gets its own.
	title := cases.Title(language.English, cases.NoLower)
	return title.String(g.Buzzword() + " " + g.BS())
}

var std = sync.OnceValue(func() *Generator { return New() })

// Company returns a company name.
func Company() string { return std().Company() }

// Suffix returns a legal suffix such as "Inc".
func Suffix() string { return std().Suffix() }

// Buzzword returns a marketing adjective.
func Buzzword() string { return std().Buzzword() }

// BS returns a piece of business jargon.
func BS() string { return std().BS() }

// CatchPhrase returns a title-cased buzzword followed by jargon.
func CatchPhrase() string { return std().CatchPhrase() }
