package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"battlesim/match"
	"battlesim/script"
)

func TestLoadMatchFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	content := "5\n5\n1:2,2:4,2:3,3:4,4:0\n0:3,1:0,3:1,2:4,0:4\n5\n0,1:4,3:2,3:3,1:4,1\n0,1:0,0:1,2:2,3:4,3\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m := match.New()
	if err := loadMatch(m, path); err != nil {
		t.Fatalf("loadMatch: %v", err)
	}
	if !m.Ready() {
		t.Error("match should be ready after loading")
	}
}

func TestLoadMatchInvalidInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.txt")
	if err := os.WriteFile(path, []byte("11\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := loadMatch(match.New(), path)
	var fe *script.FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *script.FieldError", err)
	}
	if fe.Line != 1 {
		t.Errorf("Line = %d, want 1", fe.Line)
	}
}

func TestLoadMatchMissingFile(t *testing.T) {
	if err := loadMatch(match.New(), "/nonexistent/input.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}
