package dataset

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/mockd/pkg/logger"
)

// SupportedMajorVersion is the table file major version this package reads.
const SupportedMajorVersion = "1"

// Table file names, relative to the root of the file system passed to Load.
const (
	AddressFile = "address.yaml"
	CompanyFile = "company.yaml"
	NameFile    = "name.yaml"
)

//go:embed data/*.yaml
var embedded embed.FS

// tableFile is the on-disk layout: a version header next to the tables.
type tableFile[T any] struct {
	Version string `yaml:"version"`
	Tables  T      `yaml:",inline"`
}

type fileSpec struct {
	name   string
	decode func(ds *Dataset, data []byte) (string, error)
}

var files = []fileSpec{
	{AddressFile, func(ds *Dataset, data []byte) (string, error) { return decodeInto(data, &ds.Address) }},
	{CompanyFile, func(ds *Dataset, data []byte) (string, error) { return decodeInto(data, &ds.Company) }},
	{NameFile, func(ds *Dataset, data []byte) (string, error) { return decodeInto(data, &ds.Name) }},
}

// Option configures Load.
type Option func(*options)

type options struct {
	log *slog.Logger
}

// WithLogger sets the logger used to report which tables were loaded.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

var (
	defaultOnce    sync.Once
	defaultDataset *Dataset
)

// Default returns the embedded dataset. It is parsed on first use and shared
// afterwards. A corrupt embedded table is a build defect and panics.
func Default() *Dataset {
	defaultOnce.Do(func() {
		ds, err := Load(nil)
		if err != nil {
			panic(fmt.Sprintf("dataset: embedded tables are invalid: %v", err))
		}
		defaultDataset = ds
	})
	return defaultDataset
}

// LoadDir loads table files from dir. See Load.
func LoadDir(dir string, opts ...Option) (*Dataset, error) {
	return Load(os.DirFS(dir), opts...)
}

// Load reads table files from fsys, using the embedded copy for every file
// fsys does not contain. A nil fsys loads the embedded tables only.
// The result is validated before it is returned.
func Load(fsys fs.FS, opts ...Option) (*Dataset, error) {
	o := &options{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(o)
	}
	log := o.log.With(logger.Component("dataset"))
	start := time.Now()

	ds := &Dataset{Versions: make(map[string]string, len(files))}
	for _, f := range files {
		data, origin, err := readFile(fsys, f.name)
		if err != nil {
			return nil, err
		}

		version, err := f.decode(ds, data)
		if err != nil {
			return nil, fmt.Errorf("%s (%s): %w", f.name, origin, err)
		}
		if major, _, _ := strings.Cut(version, "."); major != SupportedMajorVersion {
			return nil, fmt.Errorf("%w: %s declares %q", ErrUnsupportedVersion, f.name, version)
		}
		ds.Versions[f.name] = version

		log.Debug("table file loaded",
			logger.File(f.name),
			slog.String("origin", origin),
			slog.String("version", version),
		)
	}

	if problems := ds.problems(); len(problems) > 0 {
		log.Error("dataset rejected", logger.Errors(problems...))
		return nil, errors.Join(problems...)
	}

	for _, t := range ds.tables() {
		log.Debug("table ready", logger.Table(t.name), logger.Count(len(t.values)))
	}
	versions := make([]slog.Attr, 0, len(files))
	for _, f := range files {
		versions = append(versions, slog.String(f.name, ds.Versions[f.name]))
	}
	log.Debug("dataset loaded",
		logger.Group("versions", versions...),
		logger.Duration(time.Since(start)),
	)

	return ds, nil
}

func readFile(fsys fs.FS, name string) ([]byte, string, error) {
	if fsys != nil {
		data, err := fs.ReadFile(fsys, name)
		switch {
		case err == nil:
			return data, "override", nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, "", errors.Join(ErrReadFile, err)
		}
	}

	data, err := embedded.ReadFile("data/" + name)
	if err != nil {
		return nil, "", errors.Join(ErrReadFile, err)
	}
	return data, "embedded", nil
}

// decodeInto decodes a table file into dst and returns its declared version.
// Unknown keys are rejected so typos in override files surface as errors
// instead of silently empty tables.
func decodeInto[T any](data []byte, dst *T) (string, error) {
	var f tableFile[T]
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return "", errors.Join(ErrInvalidYAML, err)
	}
	*dst = f.Tables
	return f.Version, nil
}
