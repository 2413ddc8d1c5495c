package random_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mockd/pkg/random"
)

func TestPick(t *testing.T) {
	t.Parallel()

	table := []string{"Inc", "LLC", "Group"}
	src := random.NewSeeded(7)

	seen := make(map[string]int)
	for range 3000 {
		v := random.Pick(src, table)
		assert.Contains(t, table, v)
		seen[v]++
	}
	assert.Len(t, seen, len(table), "every member should eventually be returned")

	assert.Equal(t, "only", random.Pick(src, []string{"only"}))
}

func TestPick_EmptyTablePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { random.Pick(nil, nil) })
	assert.Panics(t, func() { random.Element(nil, []int{}) })
}

func TestElement(t *testing.T) {
	t.Parallel()

	calls := make(map[int]int)
	patterns := []func() int{
		func() int { return 1 },
		func() int { return 2 },
		func() int { return 3 },
	}
	src := random.NewSeeded(11)
	for range 1000 {
		calls[random.Element(src, patterns)()]++
	}
	assert.Len(t, calls, 3)
}

func BenchmarkPick(b *testing.B) {
	table := []string{"Inc", "and Sons", "LLC", "Group"}
	b.ReportAllocs()
	for b.Loop() {
		_ = random.Pick(nil, table)
	}
}
