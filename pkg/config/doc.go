// Package config loads typed configuration from environment variables.
//
// Load parses a struct with github.com/caarlos0/env/v11 and caches the result
// per type, so repeated calls are cheap. Structs that implement Validator are
// checked before they are cached. LoadEnv reads .env files with
// github.com/joho/godotenv without overriding variables that are already set.
//
//	if err := config.LoadEnv(envFile); err != nil {
//	    return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// ResetCache clears every cached type and is mostly useful in tests.
package config
