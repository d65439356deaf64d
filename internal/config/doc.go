// Package config resolves vault-cli settings from multiple sources (YAML files,
// environment variables, CLI flags, secret files and named profiles) with
// precedence: secret files > selected profile > CLI flags > environment >
// YAML files (in candidate order) > defaults. The result is a flat Settings
// mapping handed to the vault client.
package config
