package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

func TestReadCounts(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "counts.txt", []byte(
		"# word frequency snapshot\n"+
			"120\n"+
			"\n"+
			"60.5\n"+
			"  40  \n"))

	counts, err := ReadCounts(path)
	require.NoError(t, err)
	require.Equal(t, []float64{120, 60.5, 40}, counts)
}

func TestReadCountsInvalidLine(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "counts.txt", []byte("120\nnot-a-number\n"))

	_, err := ReadCounts(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), ":2:")
}

func TestReadCountsMissingFile(t *testing.T) {
	_, err := ReadCounts(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestReadPairs(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "pairs.txt", []byte(
		"# size count\n"+
			"1 100\n"+
			"2 41\n"+
			"3 27\n"))

	sizes, counts, err := ReadPairs(path)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, sizes)
	require.Equal(t, []float64{100, 41, 27}, counts)
}

func TestReadPairsMalformed(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{name: "missing count", content: "1 100\n2\n"},
		{name: "extra field", content: "1 100 9\n"},
		{name: "bad size", content: "x 100\n"},
		{name: "bad count", content: "1 x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "pairs-"+tt.name+".txt", []byte(tt.content))

			_, _, err := ReadPairs(path)
			require.Error(t, err)
		})
	}
}

func TestReadCountsCompressed(t *testing.T) {
	plain := []byte("120\n60\n40\n30\n")

	tests := []struct {
		name string
		typ  CompressionType
	}{
		{name: "counts.txt.zst", typ: CompressionZstd},
		{name: "counts.txt.s2", typ: CompressionS2},
		{name: "counts.txt.lz4", typ: CompressionLZ4},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			codec, err := NewCodec(tt.typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(plain)
			require.NoError(t, err)
			path := writeFile(t, dir, tt.name, compressed)

			counts, err := ReadCounts(path)
			require.NoError(t, err)
			require.Equal(t, []float64{120, 60, 40, 30}, counts)
		})
	}
}
