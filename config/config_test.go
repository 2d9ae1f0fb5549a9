package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsBadColor(t *testing.T) {
	c := DefaultConfig
	c.Theme.Colors.HitColor = 300

	err := c.Validate()
	var ic *InvalidConfig
	if !errors.As(err, &ic) {
		t.Fatalf("error = %v, want *InvalidConfig", err)
	}
}

func TestReportDir(t *testing.T) {
	c := DefaultConfig
	if c.ReportDir() != DefaultOutputDir() {
		t.Errorf("ReportDir() = %q, want %q", c.ReportDir(), DefaultOutputDir())
	}
	c.OutputDir = "/tmp/reports"
	if c.ReportDir() != "/tmp/reports" {
		t.Errorf("ReportDir() = %q, want /tmp/reports", c.ReportDir())
	}
}

func TestInputPath(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "here.txt")
	if err := os.WriteFile(existing, []byte("5"), 0644); err != nil {
		t.Fatal(err)
	}

	c := DefaultConfig
	c.InputDir = "data"
	if got := c.InputPath(existing); got != existing {
		t.Errorf("InputPath(absolute) = %q, want %q", got, existing)
	}
	if got := c.InputPath("sample-data-1.txt"); got != filepath.Join("data", "sample-data-1.txt") {
		t.Errorf("InputPath(relative) = %q", got)
	}
}

func TestReadCfgFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"output_dir": "/srv/out", "theme": {"colors": {"hit": 9}}}`), 0644); err != nil {
		t.Fatal(err)
	}

	c := DefaultConfig
	if err := readCfgFile(path, &c); err != nil {
		t.Fatalf("readCfgFile: %v", err)
	}
	if c.OutputDir != "/srv/out" {
		t.Errorf("OutputDir = %q, want /srv/out", c.OutputDir)
	}
	if c.Theme.Colors.HitColor != 9 {
		t.Errorf("HitColor = %d, want 9", c.Theme.Colors.HitColor)
	}
	if c.InputDir != "data" {
		t.Errorf("InputDir = %q, want default data", c.InputDir)
	}
	if c.Theme.Colors.ShipColor != DefaultTheme.Colors.ShipColor {
		t.Errorf("ShipColor = %d, want default %d", c.Theme.Colors.ShipColor, DefaultTheme.Colors.ShipColor)
	}
}

func TestReadCfgFileBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{`), 0644); err != nil {
		t.Fatal(err)
	}
	c := DefaultConfig
	var ic *InvalidConfig
	if err := readCfgFile(path, &c); !errors.As(err, &ic) {
		t.Errorf("error = %v, want *InvalidConfig", err)
	}
}

func TestSaveCfgFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	c := DefaultConfig
	c.InputDir = "scripts"
	if err := saveCfgFile(path, &c, 0664); err != nil {
		t.Fatal(err)
	}
	var back Config
	if err := readCfgFile(path, &back); err != nil {
		t.Fatal(err)
	}
	if back.InputDir != "scripts" {
		t.Errorf("InputDir = %q, want scripts", back.InputDir)
	}
}
