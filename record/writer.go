// Package record stores rendered match reports on disk.
package record

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileName returns the report name for an input file, e.g.
// "Result__1700000000__sample-data-1.txt" for "data/sample-data-1.txt".
func FileName(inputName string, now time.Time) string {
	base := filepath.Base(inputName)
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return fmt.Sprintf("Result__%d__%s.txt", now.Unix(), base)
}

// Write creates the report file for inputName in dir and fills it with render.
// It returns the path of the written file.
func Write(dir, inputName string, now time.Time, render func(io.Writer) error) (path string, err error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path = filepath.Join(dir, FileName(inputName, now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close report file: %w", cerr)
		}
	}()

	if err := render(f); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
