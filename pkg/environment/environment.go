package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Parse maps a configuration value, including the short forms "dev", "stage"
// and "prod", to an Environment. Unknown or empty values mean Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool { return e == Production }

// IsDevelopment reports whether e is the development environment.
func (e Environment) IsDevelopment() bool { return e == Development }

// IsStaging reports whether e is the staging environment.
func (e Environment) IsStaging() bool { return e == Staging }

func (e Environment) String() string { return string(e) }
