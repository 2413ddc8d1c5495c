package name_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mockd/pkg/dataset"
	"github.com/dmitrymomot/mockd/pkg/name"
	"github.com/dmitrymomot/mockd/pkg/random"
)

func TestTableFunctions(t *testing.T) {
	t.Parallel()

	tables := dataset.Default().Name
	tests := []struct {
		name  string
		fn    func() string
		table []string
	}{
		{"first", name.First, tables.First},
		{"last", name.Last, tables.Last},
		{"prefix", name.Prefix, tables.Prefix},
		{"suffix", name.Suffix, tables.Suffix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for range 200 {
				assert.Contains(t, tt.table, tt.fn())
			}
		})
	}
}

func TestFull(t *testing.T) {
	t.Parallel()

	tables := dataset.Default().Name
	gen := name.New(name.WithSource(random.NewSeeded(4)))

	shapes := make(map[string]bool)
	for range 500 {
		full := gen.Full()
		parts := strings.Fields(full)
		require.GreaterOrEqual(t, len(parts), 2, full)

		switch {
		case slices.Contains(tables.Prefix, parts[0]):
			shapes["prefix"] = true
			assert.Contains(t, tables.First, parts[1])
			assert.Contains(t, tables.Last, parts[2])
		case len(parts) == 3:
			shapes["suffix"] = true
			assert.Contains(t, tables.Suffix, parts[2])
		default:
			shapes["plain"] = true
			assert.Contains(t, tables.First, parts[0])
			assert.Contains(t, tables.Last, parts[1])
		}
	}
	assert.Len(t, shapes, 3, "every pattern should be produced")
}

func TestNew_WithDataset(t *testing.T) {
	t.Parallel()

	ds := &dataset.Dataset{Name: dataset.Name{
		Prefix: []string{"Sir"},
		Suffix: []string{"Esq."},
		First:  []string{"Ada"},
		Last:   []string{"Lovelace"},
	}}
	gen := name.New(name.WithDataset(ds), name.WithSource(nil))

	assert.Equal(t, "Ada", gen.First())
	assert.Equal(t, "Lovelace", gen.Last())
	assert.Contains(t, []string{"Ada Lovelace", "Sir Ada Lovelace", "Ada Lovelace Esq."}, gen.Full())
}

func TestNew_SeededIsReproducible(t *testing.T) {
	t.Parallel()

	a := name.New(name.WithSource(random.NewSeeded(9)))
	b := name.New(name.WithSource(random.NewSeeded(9)))
	for range 50 {
		require.Equal(t, a.Full(), b.Full())
	}
}
