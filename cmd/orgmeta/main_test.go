package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/orgmeta/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestRun_Graph(t *testing.T) {
	// --- Arrange ---
	tempDir := t.TempDir()
	files := map[string]string{
		"contributors/alice.toml": "full-name = \"Alice\"\ngithub-username = \"alice\"\nslack-member-id = \"U1\"\n",
		"contributors/bob.toml":   "full-name = \"Bob\"\ngithub-username = \"bob\"\nslack-member-id = \"U2\"\n",
		"teams/core.toml":         "slug = \"core\"\nname = \"Core\"\nleads = [\"alice\"]\ndevs = [\"bob\"]\nrepos = []\nslack-channel-ids = []\n",
	}
	for rel, content := range files {
		path := filepath.Join(tempDir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "failed to set up test file")
	}

	args := []string{
		"graph",
		"--contributors", filepath.Join(tempDir, "contributors", "*.toml"),
		"--teams", filepath.Join(tempDir, "teams", "*.toml"),
	}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, errOut, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), `"id": "contributor:alice"`)
	require.Contains(t, out.String(), `"target": "contributor:bob"`)
	require.Contains(t, errOut.String(), "Records loaded.", "logs go to the error stream given to run")
	require.NotContains(t, out.String(), "Records loaded.")
}

func TestRun_Help(t *testing.T) {
	// The help flag prints usage and returns a nil error.
	out := &bytes.Buffer{}

	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error for help")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	// An unknown flag is a usage error with exit code 2.
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"graph", "--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}
