// Package glossary loads the domain terms the summary should use verbatim.
package glossary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the glossary file looked up next to the executable.
const FileName = "special_terms.txt"

// DefaultPath returns FileName in the directory of the running executable.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return FileName
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}

// Load reads terms from path. A missing file yields no terms and no error.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open glossary: %w", err)
	}
	defer f.Close()

	terms, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read glossary %s: %w", path, err)
	}
	return terms, nil
}

// Parse returns one term per line, skipping blank lines and '#' comments.
func Parse(r io.Reader) ([]string, error) {
	var terms []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}

	return terms, scanner.Err()
}
