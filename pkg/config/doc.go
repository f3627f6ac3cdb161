// Package config handles configuration management for corky.
//
// Configuration is layered with koanf: embedded defaults, the per-user
// config file, the project's .corky.toml and finally CORKY_* environment
// variables. Later layers override earlier ones key by key.
package config
