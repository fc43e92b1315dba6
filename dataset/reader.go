package dataset

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load reads the file at path and returns its decompressed contents.
// Compression is detected from the file extension.
func Load(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	codec, err := NewCodec(DetectCompression(path))
	if err != nil {
		return nil, err
	}

	data, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", path, err)
	}

	return data, nil
}

// ReadCounts reads a counts file: one count per line, blank lines and '#'
// comments skipped. The counts are returned in file order; positivity is
// enforced later by the fit, not here.
func ReadCounts(path string) ([]float64, error) {
	data, err := Load(path)
	if err != nil {
		return nil, err
	}

	var counts []float64
	err = eachLine(data, func(lineno int, line string) error {
		count, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return fmt.Errorf("%s:%d: invalid count %q", path, lineno, line)
		}
		counts = append(counts, count)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return counts, nil
}

// ReadPairs reads a pairs file: one "size count" pair per line, blank lines
// and '#' comments skipped. Sizes and counts are returned index-aligned in
// file order.
func ReadPairs(path string) (sizes []int, counts []float64, err error) {
	data, err := Load(path)
	if err != nil {
		return nil, nil, err
	}

	err = eachLine(data, func(lineno int, line string) error {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return fmt.Errorf("%s:%d: expected \"size count\", got %q", path, lineno, line)
		}

		size, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("%s:%d: invalid size %q", path, lineno, fields[0])
		}
		count, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return fmt.Errorf("%s:%d: invalid count %q", path, lineno, fields[1])
		}

		sizes = append(sizes, size)
		counts = append(counts, count)

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return sizes, counts, nil
}

// eachLine calls fn for every non-blank, non-comment line with its 1-based
// line number and whitespace-trimmed content.
func eachLine(data []byte, fn func(lineno int, line string) error) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))

	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(lineno, line); err != nil {
			return err
		}
	}

	return scanner.Err()
}
