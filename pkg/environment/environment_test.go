package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mockd/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  environment.Environment
	}{
		{name: "production", input: "production", want: environment.Production},
		{name: "prod short form", input: "prod", want: environment.Production},
		{name: "staging", input: "staging", want: environment.Staging},
		{name: "stage short form", input: "stage", want: environment.Staging},
		{name: "development", input: "development", want: environment.Development},
		{name: "mixed case and spaces", input: "  PROD ", want: environment.Production},
		{name: "empty defaults to development", input: "", want: environment.Development},
		{name: "unknown defaults to development", input: "qa", want: environment.Development},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, environment.Parse(tt.input))
		})
	}
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, environment.Production.IsProduction())
	assert.False(t, environment.Production.IsDevelopment())
	assert.True(t, environment.Staging.IsStaging())
	assert.True(t, environment.Development.IsDevelopment())
	assert.Equal(t, "staging", environment.Staging.String())
}
