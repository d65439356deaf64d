package config

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"go.uber.org/zap/zaptest"
)

func TestResolveSecretFiles(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/tmp/secret", "filed\n")
	writeFile(t, fsys, "/tmp/token", "\ts.abcdef \n")

	tests := []struct {
		name     string
		input    Settings
		stdin    string
		expected Settings
	}{
		{
			name:     "file value shadows direct value",
			input:    Settings{"password": "plain", "password_file": "/tmp/secret"},
			expected: Settings{"password": "filed"},
		},
		{
			name:     "token from file",
			input:    Settings{"token": nil, "token_file": "/tmp/token", "url": "http://a"},
			expected: Settings{"token": "s.abcdef", "url": "http://a"},
		},
		{
			name:     "empty companion is dropped",
			input:    Settings{"password": "plain", "password_file": "", "token_file": nil},
			expected: Settings{"password": "plain"},
		},
		{
			name:     "dash reads stdin",
			input:    Settings{"password_file": "-"},
			stdin:    "from stdin\n",
			expected: Settings{"password": "from stdin"},
		},
		{
			name:     "other settings are untouched",
			input:    Settings{"ca_bundle": "/tmp/secret", "username": "alice"},
			expected: Settings{"ca_bundle": "/tmp/secret", "username": "alice"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			reader := &FileReader{Fs: fsys, Stdin: strings.NewReader(tc.stdin)}
			got, err := ResolveSecretFiles(tc.input, reader, zaptest.NewLogger(t))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Fatalf("ResolveSecretFiles() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveSecretFilesMissingFile(t *testing.T) {
	t.Parallel()

	reader := &FileReader{Fs: afero.NewMemMapFs()}
	_, err := ResolveSecretFiles(Settings{"token_file": "/missing"}, reader, nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestResolveSecretFilesRejectsNonStringPath(t *testing.T) {
	t.Parallel()

	reader := &FileReader{Fs: afero.NewMemMapFs()}
	_, err := ResolveSecretFiles(Settings{"password_file": []any{"/a", "/b"}}, reader, nil)
	if !errors.Is(err, ErrSettings) {
		t.Fatalf("expected settings error, got %v", err)
	}
}
