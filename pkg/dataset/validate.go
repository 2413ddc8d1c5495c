package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/mockd/pkg/random"
)

// Validate checks that every table is usable by the generators.
// All problems are reported, joined into a single error.
func (d *Dataset) Validate() error {
	return errors.Join(d.problems()...)
}

func (d *Dataset) problems() []error {
	var errs []error
	for _, t := range d.tables() {
		if len(t.values) == 0 {
			errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyTable, t.name))
			continue
		}
		if !t.template {
			continue
		}
		for _, v := range t.values {
			if strings.IndexByte(v, random.DigitPlaceholder) < 0 {
				errs = append(errs, fmt.Errorf("%w: %s entry %q", ErrInvalidTemplate, t.name, v))
			}
		}
	}
	return errs
}
