// battlesim replays a scripted two-player Battleship match and writes the result report.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"battlesim/config"
	"battlesim/match"
	"battlesim/record"
	"battlesim/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagInput   = flag.String("input", "sample-data-1.txt", "Simulation input file name")
	flagDebug   = flag.Bool("debug", false, "Print lots of debugging statements")
	flagVerbose = flag.Bool("verbose", false, "Be verbose")
	flagView    = flag.Bool("view", false, "Show the finished match in the terminal")
	flagVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("battlesim %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.InitConfig()
	if err != nil {
		return err
	}

	debugLog := log.New(io.Discard, "", 0)
	if *flagDebug {
		debugLog = log.New(os.Stderr, "DEBUG ", log.Ltime|log.Lmicroseconds)
	}
	infoLog := log.New(io.Discard, "", 0)
	if *flagVerbose || *flagDebug {
		infoLog = log.New(os.Stderr, "INFO ", log.Ltime)
	}

	inputPath := cfg.InputPath(*flagInput)
	m := match.New(match.WithLogger(debugLog))
	if err := loadMatch(m, inputPath); err != nil {
		return err
	}
	infoLog.Printf("[%s] inputs read from %s", m.ID, inputPath)

	if err := m.Simulate(); err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	path, err := record.Write(cfg.ReportDir(), inputPath, time.Now(), m.WriteReport)
	if err != nil {
		return err
	}
	infoLog.Printf("[%s] simulation result written to %s", m.ID, path)
	fmt.Println(path)

	if *flagView {
		summary, err := m.Summary()
		if err != nil {
			return err
		}
		return ui.Show(summary, cfg.Theme)
	}
	return nil
}

// loadMatch reads the script at path into m.
func loadMatch(m *match.Match, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	if err := m.Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
