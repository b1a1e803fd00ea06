// Package config loads typed configuration structs from environment
// variables.
//
// Load parses `env` struct tags via caarlos0/env, after loading a local
// .env file once per process if one exists. Every component of the
// service declares its own small config struct (storage, icons, logger,
// database, server) and loads it independently, so packages stay
// decoupled from a central settings blob.
package config
