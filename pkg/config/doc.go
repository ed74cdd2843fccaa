// Package config loads typed configuration from environment variables using
// github.com/caarlos0/env struct tags, after reading an optional .env file
// with github.com/joho/godotenv.
package config
