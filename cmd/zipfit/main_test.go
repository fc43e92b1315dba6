package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zipflab/zipfit/errs"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "empty counts", err: errs.ErrEmptyCounts, want: ExitBadData},
		{name: "wrapped mismatch", err: fmt.Errorf("context: %w", errs.ErrSizeMismatch), want: ExitBadData},
		{name: "non-positive count", err: errs.ErrNonPositiveCount, want: ExitBadData},
		{name: "other error", err: errors.New("boom"), want: ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRankCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts.txt")
	require.NoError(t, os.WriteFile(path, []byte("120\n60\n40\n30\n"), 0o644))

	out, err := runCommand(t, "rank", path)
	require.NoError(t, err)
	require.Contains(t, out, "slope=")
	require.Contains(t, out, "r2=")
	require.Contains(t, out, "yintercept=")
}

func TestSizeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 8\n2 4\n4 2\n"), 0o644))

	out, err := runCommand(t, "size", path)
	require.NoError(t, err)
	require.Contains(t, out, "slope=-1")
}

func TestSizeCommandBadData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 0\n2 4\n"), 0o644))

	_, err := runCommand(t, "size", path)
	require.ErrorIs(t, err, errs.ErrNonPositiveCount)
	require.Equal(t, ExitBadData, exitCode(err))
}

func TestTextCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("the quick fox the lazy dog the end\n"), 0o644))

	out, err := runCommand(t, "text", path)
	require.NoError(t, err)
	require.Contains(t, out, "slope=")
}

func TestRankCommandMissingFile(t *testing.T) {
	_, err := runCommand(t, "rank", filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	require.Equal(t, ExitError, exitCode(err))
}
