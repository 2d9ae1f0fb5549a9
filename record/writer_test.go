package record

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileName(t *testing.T) {
	now := time.Unix(1700000000, 0)
	checks := []struct {
		input, want string
	}{
		{"sample-data-1.txt", "Result__1700000000__sample-data-1.txt"},
		{"data/unittest--input1.txt", "Result__1700000000__unittest--input1.txt"},
		{"game.v2.txt", "Result__1700000000__game.txt"},
		{"noext", "Result__1700000000__noext.txt"},
	}
	for _, c := range checks {
		if got := FileName(c.input, now); got != c.want {
			t.Errorf("FileName(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	now := time.Unix(42, 0)

	path, err := Write(dir, "input.txt", now, func(w io.Writer) error {
		_, err := io.WriteString(w, "P1:0\nP2:0\nIt is a draw")
		return err
	})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if filepath.Base(path) != "Result__42__input.txt" {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "P1:0\nP2:0\nIt is a draw" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteRenderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Write(t.TempDir(), "input.txt", time.Now(), func(io.Writer) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}
}
