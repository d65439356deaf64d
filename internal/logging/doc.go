// Package logging builds the zap logger used by vault-cli.
package logging
