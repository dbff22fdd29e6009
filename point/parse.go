package point

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a Set from r, one "x,y,z" triple per line.
//
// Blank lines are skipped; they do not consume an ID. Errors wrap
// ErrMalformedLine or ErrBadCoordinate together with the 1-based line number,
// and I/O errors from r are returned as-is (wrapped).
//
// Complexity: O(n) time and memory.
func Parse(r io.Reader) (*Set, error) {
	var (
		coords [][3]int64
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		c, err := parseTriple(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		coords = append(coords, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("point: read input: %w", err)
	}

	return NewSet(coords), nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Set, error) {
	return Parse(strings.NewReader(s))
}

// parseTriple converts "x,y,z" into three int64 values.
func parseTriple(line string) ([3]int64, error) {
	var c [3]int64
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return c, fmt.Errorf("%w: got %d in %q", ErrMalformedLine, len(fields), line)
	}
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return c, fmt.Errorf("%w: field %d %q", ErrBadCoordinate, i+1, f)
		}
		c[i] = v
	}

	return c, nil
}
