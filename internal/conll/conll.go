// Package conll reads whitespace-column files with one token per line and
// blank lines between sentences.
package conll

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// ReadLines returns every line of r with surrounding whitespace removed.
// Blank lines are kept as empty strings so line numbers stay aligned.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan lines: %w", err)
	}
	return lines, nil
}

// LoadFile reads the lines of the file at path.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadLines(f)
}

// Fields splits a line into whitespace-separated columns.
func Fields(line string) []string {
	return strings.Fields(line)
}

// Column returns fields[index]. Negative indices count from the end, so -1
// is the last column.
func Column(fields []string, index int) (string, error) {
	i := index
	if i < 0 {
		i += len(fields)
	}
	if i < 0 || i >= len(fields) {
		return "", fmt.Errorf("column %d out of range for %d columns", index, len(fields))
	}
	return fields[i], nil
}
