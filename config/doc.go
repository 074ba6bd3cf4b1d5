// Package config loads application configuration from YAML files,
// .env files, and environment variables.
//
// Resolution order follows the usual precedence: a config.yml found in a
// standard location (or passed explicitly) provides the base values, a .env
// file fills in missing environment variables, and real environment
// variables with the PATTERNS_ prefix override everything else.
//
// Typical usage:
//
//	cfg := config.Default()
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//		log.Fatal(err)
//	}
package config
