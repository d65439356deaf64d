package config

import (
	"fmt"
	"strings"
)

// Sanitize returns a copy of s with secret settings masked.
//
// This is used for printing and logging settings without exposing secrets.
func Sanitize(s Settings) Settings {
	out := s.Clone()
	for _, name := range SecretSettings {
		value, ok := out[name]
		if !ok || value == nil {
			continue
		}
		out[name] = maskSecret(fmt.Sprint(value))
	}
	return out
}

// maskSecret masks a secret value for safe display.
func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
