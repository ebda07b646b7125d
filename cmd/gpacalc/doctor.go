package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cupb-tools/gpacalc/internal/config"
	"github.com/cupb-tools/gpacalc/internal/history"
	"github.com/go-kit/log"
	"github.com/spf13/cobra"
)

func doctorCmd(logger log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, sheet layout, and history file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			home, _ := os.UserHomeDir()
			checkFile("config.toml", filepath.Join(home, ".config", "gpacalc", "config.toml"), "using defaults")

			fmt.Println("\n=== Sheet layout ===")
			fmt.Printf("  Header rows skipped: %d\n", cfg.HeaderSkipRows)
			fmt.Printf("  Name column:   %d\n", cfg.NameCol)
			fmt.Printf("  Grade column:  %d\n", cfg.GradeCol)
			fmt.Printf("  Credit column: %d\n", cfg.CreditCol)
			if cfg.HeaderSkipRows < 0 || cfg.NameCol < 0 || cfg.GradeCol < 0 || cfg.CreditCol < 0 {
				fmt.Println("  Status: INVALID (offsets must be non-negative)")
			} else {
				fmt.Println("  Status: OK")
			}

			fmt.Println("\n=== History ===")
			fmt.Printf("  Path: %s\n", cfg.HistoryPath)
			data, err := os.ReadFile(cfg.HistoryPath)
			if os.IsNotExist(err) {
				fmt.Println("  Status: NOT FOUND (created on first save)")
				return nil
			}
			if err != nil {
				fmt.Printf("  Status: UNREADABLE (%v)\n", err)
				return nil
			}

			var records []history.Record
			if err := json.Unmarshal(data, &records); err != nil {
				fmt.Printf("  Status: CORRUPT (%v), will be treated as empty\n", err)
				return nil
			}
			fmt.Printf("  Records: %d\n", len(records))
			fmt.Println("  Status: OK")

			return nil
		},
	}
}

func checkFile(name, path, missing string) {
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("  %s: %s (NOT FOUND, %s)\n", name, path, missing)
	} else {
		fmt.Printf("  %s: %s (OK)\n", name, path)
	}
}
