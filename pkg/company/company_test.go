package company_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mockd/pkg/company"
	"github.com/dmitrymomot/mockd/pkg/dataset"
	"github.com/dmitrymomot/mockd/pkg/random"
)

func TestTableFunctions(t *testing.T) {
	t.Parallel()

	tables := dataset.Default().Company
	tests := []struct {
		name  string
		fn    func() string
		table []string
	}{
		{"suffix", company.Suffix, tables.Suffix},
		{"buzzword", company.Buzzword, tables.Buzzwords},
		{"bs", company.BS, tables.BS},
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

func TestSuffix_OnlyKnownValues(t *testing.T) {
	t.Parallel()

	ds := &dataset.Dataset{
		Company: dataset.Company{
			Suffix:    []string{"Inc", "LLC", "Group"},
			Buzzwords: []string{"Lean"},
			BS:        []string{"pivot"},
		},
		Name: dataset.Default().Name,
	}
	gen := company.New(company.WithDataset(ds))

	seen := make(map[string]bool)
	for range 500 {
		seen[gen.Suffix()] = true
	}
	assert.Equal(t, map[string]bool{"Inc": true, "LLC": true, "Group": true}, seen)
}

func TestCompany(t *testing.T) {
	t.Parallel()

	ds := &dataset.Dataset{
		Company: dataset.Company{
			Suffix:    []string{"LLC"},
			Buzzwords: []string{"Lean"},
			BS:        []string{"pivot"},
		},
		Name: dataset.Name{
			Prefix: []string{"Dr."},
			Suffix: []string{"Jr."},
			First:  []string{"Ada"},
			Last:   []string{"Rowe"},
		},
	}
	gen := company.New(company.WithDataset(ds), company.WithSource(random.NewSeeded(6)))

	seen := make(map[string]bool)
	for range 300 {
		seen[gen.Company()] = true
	}
	assert.Equal(t, map[string]bool{
		"Rowe, Rowe and Rowe": true,
		"Rowe-Rowe":           true,
		"Rowe LLC":            true,
	}, seen)
}

func TestCompany_DefaultDataset(t *testing.T) {
	t.Parallel()

	lasts := dataset.Default().Name.Last
	for range 200 {
		c := company.Company()
		require.NotEmpty(t, c)
		first := strings.FieldsFunc(c, func(r rune) bool { return r == ' ' || r == ',' || r == '-' })[0]
		assert.Contains(t, lasts, first, c)
	}
}

func TestCatchPhrase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		buzzword string
		bs       string
		want     string
	}{
		{"seamless", "next-generation", "Seamless Next-Generation"},
		{"Robust", "ROI", "Robust ROI"},
		{"user-centric", "web services", "User-Centric Web Services"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			ds := &dataset.Dataset{
				Company: dataset.Company{
					Suffix:    []string{"Inc"},
					Buzzwords: []string{tt.buzzword},
					BS:        []string{tt.bs},
				},
				Name: dataset.Default().Name,
			}
			assert.Equal(t, tt.want, company.New(company.WithDataset(ds)).CatchPhrase())
		})
	}

	assert.NotEmpty(t, company.CatchPhrase())
}

func TestConcurrentGeneration(t *testing.T) {
	t.Parallel()

	gen := company.New(company.WithSource(random.NewSeeded(2)))
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 500 {
				_ = gen.Company()
				_ = gen.CatchPhrase()
				_ = company.Company()
			}
		}()
	}
	wg.Wait()
}
