package config

import (
	"io"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
)

// StdinPath is the path that makes FileReader consume standard input.
const StdinPath = "-"

// FileReader returns the trimmed content of a file or of standard input.
type FileReader struct {
	Fs    afero.Fs
	Stdin io.Reader
}

// NewFileReader returns a FileReader backed by the OS filesystem and os.Stdin.
func NewFileReader() *FileReader {
	return &FileReader{
		Fs:    afero.NewOsFs(),
		Stdin: os.Stdin,
	}
}

// Read returns the content at path with surrounding whitespace stripped.
// Errors from the filesystem are returned as is, so a missing file satisfies
// errors.Is(err, fs.ErrNotExist).
func (r *FileReader) Read(path string) (string, error) {
	if path == StdinPath {
		data, err := io.ReadAll(r.Stdin)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(data)), nil
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	data, err := afero.ReadFile(r.Fs, expanded)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
