package format

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/katalvlaran/flowdecomp/core"
)

// Network is a parsed .graph file.
//   - Vertices, Edges: the header values V and E as declared.
//   - Graph: the edges actually read, in file order.
type Network struct {
	Vertices int
	Edges    int
	Graph    *core.Graph
}

// ReadNetwork parses the network format:
//
//	V E
//	u v flow     (E lines)
//
// The first non-empty line must hold exactly two integers. Blank lines before
// the header are skipped, so a file a first-physical-line reader rejects is
// accepted here. The E lines after the header are consumed one by one; a line
// with other than three tokens is skipped but still counts toward E, and
// input ending early is not an error. Parallel edges are kept as separate
// edges. V is not bounded: searches size themselves from the edges.
//
// Errors: ErrHeader, *SyntaxError for a non-integer token, core.EdgeError
// for a negative flow.
func ReadNetwork(r io.Reader) (*Network, error) {
	lr := newLineReader(r)

	head, ok := lr.nextNonEmpty()
	if !ok {
		if err := lr.err(); err != nil {
			return nil, err
		}

		return nil, fmt.Errorf("%w: empty input", ErrHeader)
	}
	if len(head) != 2 {
		return nil, fmt.Errorf("%w: line %d: want \"V E\", got %d tokens", ErrHeader, lr.line, len(head))
	}
	ve, err := lr.ints(head)
	if err != nil {
		return nil, err
	}
	if ve[0] < 1 || ve[1] < 0 {
		return nil, fmt.Errorf("%w: line %d: V must be positive and E non-negative, got %d %d", ErrHeader, lr.line, ve[0], ve[1])
	}

	net := &Network{
		Vertices: int(ve[0]),
		Edges:    int(ve[1]),
		Graph:    core.NewGraph(int(ve[0]), core.WithEdgeCapacity(int(min(ve[1], maxPrealloc)))),
	}
	for i := 0; i < net.Edges; i++ {
		fields, ok := lr.next()
		if !ok {
			break
		}
		if len(fields) != 3 {
			continue
		}
		uvf, err := lr.ints(fields)
		if err != nil {
			return nil, err
		}
		if _, err := net.Graph.AddEdge(int(uvf[0]), int(uvf[1]), uvf[2]); err != nil {
			return nil, &SyntaxError{Line: lr.line, Err: err}
		}
	}
	if err := lr.err(); err != nil {
		return nil, err
	}

	return net, nil
}

// LoadNetwork opens path and parses it with ReadNetwork.
func LoadNetwork(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	net, err := ReadNetwork(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return net, nil
}

// WriteNetwork writes g in the format ReadNetwork reads: "V E", then one
// "u v flow" line per edge in ID order, with the current residual flow.
func WriteNetwork(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.VertexCount(), g.EdgeCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Flow)
	}

	return bw.Flush()
}

// SaveNetwork creates (or truncates) path and writes g to it.
func SaveNetwork(path string, g *core.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	return WriteNetwork(f, g)
}
