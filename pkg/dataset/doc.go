// Package dataset holds the lookup tables the category packages draw from:
// street prefixes and suffixes, states, countries, company buzzwords, first and
// last names, and the digit templates used for street numbers and zip codes.
//
// Tables are data, not code. They ship as versioned YAML files embedded into
// the binary (see the data directory) and are decoded with gopkg.in/yaml.v3.
// Default returns the embedded dataset, parsed once per process. Load and
// LoadDir read replacement files from any fs.FS or directory; a file missing
// from the override falls back to its embedded counterpart, so a dataset
// upgrade may replace a single category.
//
// Every table is validated on load. An empty table, or a template table
// without a single '#' placeholder, is rejected with an error wrapping
// ErrEmptyTable or ErrInvalidTemplate. The generation functions therefore never
// see an empty table at run time.
//
// # Usage
//
//	ds, err := dataset.LoadDir("./fixtures/tables", dataset.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	gen := address.New(address.WithDataset(ds))
package dataset
