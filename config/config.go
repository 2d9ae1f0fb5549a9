package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appDir = "battlesim"

var (
	cfgFile = appDir + "/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors holds 256-color palette indices for the report viewer.
type ConfigColors struct {
	EmptyColor int `json:"empty"`
	ShipColor  int `json:"ship"`
	HitColor   int `json:"hit"`
	MissColor  int `json:"miss"`
	LabelColor int `json:"label"`
}

type Theme struct {
	DrawCellBackground bool         `json:"draw_cell_bg"`
	Colors             ConfigColors `json:"colors"`
}

type Config struct {
	// InputDir is where relative input file names are looked up.
	InputDir string `json:"input_dir"`
	// OutputDir receives report files. Empty means DefaultOutputDir.
	OutputDir string `json:"output_dir"`
	Theme     Theme  `json:"theme"`
}

// DefaultOutputDir returns the XDG data directory reports are written to.
func DefaultOutputDir() string {
	return filepath.Join(xdg.DataHome, appDir, "out")
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	colors := c.Theme.Colors
	for _, v := range []int{colors.EmptyColor, colors.ShipColor, colors.HitColor, colors.MissColor, colors.LabelColor} {
		if v < 0 || v > 255 {
			return &InvalidConfig{fmt.Sprintf("color %d is outside the 256-color palette", v)}
		}
	}
	return nil
}

// ReportDir returns the directory report files are written to.
func (c *Config) ReportDir() string {
	if c.OutputDir == "" {
		return DefaultOutputDir()
	}
	return c.OutputDir
}

// InputPath resolves an input file name against InputDir.
// Absolute names and names of existing files are returned unchanged.
func (c *Config) InputPath(name string) string {
	if filepath.IsAbs(name) || c.InputDir == "" {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	return filepath.Join(c.InputDir, name)
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
