// Package storage provides the in-memory cache that lets repeated settings
// resolutions over the same candidate file list skip re-reading and
// re-parsing the files.
package storage
