package format

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/multierr"

	"github.com/katalvlaran/flowdecomp/flow"
)

var errNoVertices = errors.New("record has a weight but no vertices")

// ReadDecomposition parses the decomposition format used by .out and .truth
// files:
//
//	P C
//	w v1 … vk              (P path lines)
//	w v1 … vk v1           (C cycle lines, explicitly closed)
//
// Blank lines are ignored anywhere. Records are read as written: cycles are
// not closed or checked here, that is the verifier's job.
//
// Errors: ErrHeader, ErrTruncated, *SyntaxError.
func ReadDecomposition(r io.Reader) (*flow.Decomposition, error) {
	lr := newLineReader(r)

	head, ok := lr.nextNonEmpty()
	if !ok {
		if err := lr.err(); err != nil {
			return nil, err
		}

		return nil, fmt.Errorf("%w: empty input", ErrHeader)
	}
	if len(head) != 2 {
		return nil, fmt.Errorf("%w: line %d: want \"P C\", got %d tokens", ErrHeader, lr.line, len(head))
	}
	pc, err := lr.ints(head)
	if err != nil {
		return nil, err
	}
	if pc[0] < 0 || pc[1] < 0 {
		return nil, fmt.Errorf("%w: line %d: negative record count", ErrHeader, lr.line)
	}

	d := &flow.Decomposition{
		Paths:  make([]flow.Path, 0, min(pc[0], maxPrealloc)),
		Cycles: make([]flow.Cycle, 0, min(pc[1], maxPrealloc)),
	}
	for i := int64(0); i < pc[0]; i++ {
		w, vs, err := readRecord(lr, flow.PhasePaths, pc[0])
		if err != nil {
			return nil, err
		}
		d.Paths = append(d.Paths, flow.Path{Weight: w, Vertices: vs})
	}
	for i := int64(0); i < pc[1]; i++ {
		w, vs, err := readRecord(lr, flow.PhaseCycles, pc[1])
		if err != nil {
			return nil, err
		}
		d.Cycles = append(d.Cycles, flow.Cycle{Weight: w, Vertices: vs})
	}

	return d, nil
}

func readRecord(lr *lineReader, kind flow.Phase, want int64) (int64, []int, error) {
	fields, ok := lr.nextNonEmpty()
	if !ok {
		if err := lr.err(); err != nil {
			return 0, nil, err
		}

		return 0, nil, fmt.Errorf("%w: missing %s definitions (header announces %d)", ErrTruncated, kind, want)
	}
	nums, err := lr.ints(fields)
	if err != nil {
		return 0, nil, err
	}
	if len(nums) < 2 {
		return 0, nil, &SyntaxError{Line: lr.line, Err: errNoVertices}
	}

	return nums[0], toInts(nums[1:]), nil
}

// LoadDecomposition opens path and parses it with ReadDecomposition.
func LoadDecomposition(path string) (*flow.Decomposition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := ReadDecomposition(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// WriteDecomposition writes d in the format ReadDecomposition reads: the
// "P C" header, then one "w v1 … vk" line per path and per cycle, in order.
func WriteDecomposition(w io.Writer, d *flow.Decomposition) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", len(d.Paths), len(d.Cycles))
	for _, p := range d.Paths {
		writeRecord(bw, p.Weight, p.Vertices)
	}
	for _, c := range d.Cycles {
		writeRecord(bw, c.Weight, c.Vertices)
	}

	return bw.Flush()
}

func writeRecord(bw *bufio.Writer, weight int64, vs []int) {
	bw.WriteString(strconv.FormatInt(weight, 10))
	for _, v := range vs {
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(v))
	}
	bw.WriteByte('\n')
}

// SaveDecomposition creates (or truncates) path and writes d to it.
func SaveDecomposition(path string, d *flow.Decomposition) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	return WriteDecomposition(f, d)
}
