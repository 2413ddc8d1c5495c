// Package logger builds *slog.Logger values for mockd tools and provides
// helper attribute constructors so log keys stay consistent across packages.
//
// New takes functional options:
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment select
//     a profile (format, level, service and env attributes).
//   - WithFormat, WithLevel, WithOutput and WithAttr override single settings.
//
// Logs go to stderr by default so the mockd command can print generated values
// on stdout.
//
//	log := logger.New(logger.WithEnvironment(env, "mockd"))
//	log.Debug("table ready", logger.Table("address.zip"), logger.Count(1))
//
// Error and Errors return an empty Attr for nil errors, so callers can log
// unconditionally.
package logger
