// Package config loads struct configuration from environment variables and
// an optional .env file, following the twelve-factor convention used across
// this module's packages: every Config struct declares `env` and
// `envDefault` tags and is loaded once at startup.
package config
