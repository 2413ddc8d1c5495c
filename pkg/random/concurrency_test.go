package random_test

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mockd/pkg/random"
)

func TestConcurrentGeneration(t *testing.T) {
	t.Parallel()

	const (
		goroutines = 32
		iterations = 2000
	)

	zip := regexp.MustCompile(`^[0-9]{5}$`)
	table := []string{"Inc", "LLC", "Group"}

	for _, tc := range []struct {
		name string
		src  random.Source
	}{
		{"default source", nil},
		{"shared seeded source", random.NewSeeded(77)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var (
				wg       sync.WaitGroup
				mu       sync.Mutex
				failures []string
			)
			fail := func(s string) {
				mu.Lock()
				failures = append(failures, s)
				mu.Unlock()
			}

			for range goroutines {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for range iterations {
						if v := random.Int(tc.src, 1, 3); v < 1 || v > 3 {
							fail("int out of range")
						}
						if v := random.Numerify(tc.src, "#####"); !zip.MatchString(v) {
							fail("malformed zip " + v)
						}
						if v := random.Pick(tc.src, table); v != "Inc" && v != "LLC" && v != "Group" {
							fail("unexpected pick " + v)
						}
						if v := random.Latitude.InRange(tc.src, 100, 200); !random.Latitude.Contains(v) {
							fail("latitude out of domain")
						}
					}
				}()
			}
			wg.Wait()

			assert.Empty(t, failures)
		})
	}
}
