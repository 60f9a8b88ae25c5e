package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Fixture is one test case: a network, its reference decomposition and the
// candidate output to score.
type Fixture struct {
	Name   string // base name shared by the three files
	Graph  string // <testDir>/<Name>.graph
	Truth  string // <testDir>/<Name>.truth
	Output string // <outDir>/<Name>.out
}

// Discover lists every *.graph file in testDir, sorted by name, paired with
// its .truth companion in testDir and its .out candidate in outDir. The
// companions are not checked for existence.
func Discover(testDir, outDir string) ([]Fixture, error) {
	matches, err := filepath.Glob(filepath.Join(testDir, "*.graph"))
	if err != nil {
		return nil, fmt.Errorf("harness: %w", err)
	}
	sort.Strings(matches)

	out := make([]Fixture, 0, len(matches))
	for _, g := range matches {
		name := strings.TrimSuffix(filepath.Base(g), filepath.Ext(g))
		out = append(out, Fixture{
			Name:   name,
			Graph:  g,
			Truth:  filepath.Join(testDir, name+".truth"),
			Output: filepath.Join(outDir, name+".out"),
		})
	}

	return out, nil
}

// OutputPath returns <outDir>/<NAME>.out for an input file NAME.<ext>.
func OutputPath(input, outDir string) string {
	base := filepath.Base(input)
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}

	return filepath.Join(outDir, base+".out")
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
