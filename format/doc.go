// Package format reads and writes the two text formats of a decomposition
// run: the network (.graph) and the decomposition (.out, .truth).
//
// Both are whitespace-separated integers, one record per line. Readers take
// an io.Reader; the Load/Save helpers wrap them with os file handling.
package format
