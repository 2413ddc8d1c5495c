// Package config loads settings from environment variables into typed structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment.
//     Variables already set in the environment win over file values.
//   - Load parses the environment into any struct annotated with `env` tags.
//     The default .env file in the working directory is read once, if present.
//   - MustLoad panics instead of returning an error.
//
// # Usage
//
//	type Config struct {
//	    DataDir  string `env:"MOCKD_DATA_DIR"`
//	    LogLevel string `env:"MOCKD_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer and can be matched with errors.Is.
package config
