// Package config loads configuration structs from environment variables
// using `env` / `envDefault` field tags, with optional .env file support
// for local development. Every trackkit package exposes its own Config
// struct; this loader is how twelve-factor deployments populate them.
package config
