// Package application provides application initialization and dependency wiring.
// It encapsulates the creation of the file-contents cache, the settings
// resolver and the YAML rendering of results, keeping the main package focused
// on CLI parsing and orchestration.
package application
