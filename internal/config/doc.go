// Package config handles YAML configuration loading with environment variable substitution.
//
// A config file is optional: Default() reproduces the built-in behavior.
// Configuration files support ${VAR} syntax for environment variable
// interpolation, and a .env file next to the config file is loaded first.
package config
