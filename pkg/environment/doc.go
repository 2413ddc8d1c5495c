// Package environment names the environments mockd tools run in
// (development, staging, production) and parses them from configuration.
//
// The logger package uses these names to pick output defaults, and the mockd
// command reads the current environment from MOCKD_ENV:
//
//	env := environment.Parse(os.Getenv("MOCKD_ENV"))
//	log := logger.New(logger.WithEnvironment(env, "mockd"))
package environment
