package config

import (
	"io/fs"
	"os"
	"sync"
	"testing"

	"github.com/spf13/afero"
)

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()

	if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// countingFs records how many times each path is opened.
type countingFs struct {
	afero.Fs

	mu    sync.Mutex
	opens map[string]int
}

func newCountingFs(base afero.Fs) *countingFs {
	return &countingFs{Fs: base, opens: make(map[string]int)}
}

func (c *countingFs) Open(name string) (afero.File, error) {
	c.mu.Lock()
	c.opens[name]++
	c.mu.Unlock()
	return c.Fs.Open(name)
}

func (c *countingFs) count(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opens[name]
}

// deniedFs refuses to open the listed paths with a permission error.
type deniedFs struct {
	afero.Fs
	denied map[string]bool
}

func (d *deniedFs) Open(name string) (afero.File, error) {
	if d.denied[name] {
		return nil, &os.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return d.Fs.Open(name)
}

// fixedLocator returns a predetermined candidate list.
type fixedLocator []string

func (f fixedLocator) CandidateFiles() []string {
	return append([]string(nil), f...)
}

func emptyEnviron() (map[string]string, error) {
	return map[string]string{}, nil
}

func staticEnviron(environ map[string]string) func() (map[string]string, error) {
	return func() (map[string]string, error) {
		return environ, nil
	}
}
