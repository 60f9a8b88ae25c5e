package harness

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Accumulate adds delta to the integer stored in path and writes the new
// value back as "N\n". A missing or blank file counts as 0.
func Accumulate(path string, delta int) (int, error) {
	current := 0
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return 0, fmt.Errorf("harness: score file: %w", err)
	default:
		if s := strings.TrimSpace(string(data)); s != "" {
			current, err = strconv.Atoi(s)
			if err != nil {
				return 0, fmt.Errorf("harness: score file %s: %w", path, err)
			}
		}
	}

	total := current + delta
	if err := os.WriteFile(path, []byte(strconv.Itoa(total)+"\n"), 0o644); err != nil {
		return 0, fmt.Errorf("harness: score file: %w", err)
	}

	return total, nil
}
