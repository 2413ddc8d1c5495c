package dataset

import "errors"

var (
	// ErrInvalidYAML is returned when a table file cannot be decoded.
	ErrInvalidYAML = errors.New("dataset: invalid yaml")

	// ErrEmptyTable is returned when a lookup table has no entries.
	ErrEmptyTable = errors.New("dataset: empty table")

	// ErrInvalidTemplate is returned when a template table entry has no placeholder.
	ErrInvalidTemplate = errors.New("dataset: template without placeholder")

	// ErrUnsupportedVersion is returned for table files with an unknown major version.
	ErrUnsupportedVersion = errors.New("dataset: unsupported version")

	// ErrReadFile is returned when a table file exists but cannot be read.
	ErrReadFile = errors.New("dataset: failed to read file")
)
