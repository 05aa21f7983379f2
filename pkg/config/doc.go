// Package config handles configuration management for templateer.
// Values are layered from embedded defaults, the project's .templateer.toml,
// a project .env file, and environment variables, then decoded into Config.
package config
