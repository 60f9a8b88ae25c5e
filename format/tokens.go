package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxPrealloc caps capacity taken from a header; counts beyond it still
// read, they just grow the slices.
const maxPrealloc = 1 << 12

// lineReader yields the physical lines of r with their 1-based numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &lineReader{sc: sc}
}

// next returns the fields of the next line; ok is false at EOF.
func (lr *lineReader) next() (fields []string, ok bool) {
	if !lr.sc.Scan() {
		return nil, false
	}
	lr.line++

	return strings.Fields(lr.sc.Text()), true
}

// nextNonEmpty skips blank lines.
func (lr *lineReader) nextNonEmpty() (fields []string, ok bool) {
	for {
		fields, ok = lr.next()
		if !ok || len(fields) > 0 {
			return fields, ok
		}
	}
}

func (lr *lineReader) err() error { return lr.sc.Err() }

// ints parses every field of the current line as a base-10 integer.
func (lr *lineReader) ints(fields []string) ([]int64, error) {
	out := make([]int64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, &SyntaxError{Line: lr.line, Err: fmt.Errorf("field %d: %w", i+1, err)}
		}
		out[i] = n
	}

	return out, nil
}

// toInts narrows vertex ids.
func toInts(vs []int64) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = int(v)
	}

	return out
}
