package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	HistoryPath    string `toml:"history_path"`
	HeaderSkipRows int    `toml:"header_skip_rows"`
	NameCol        int    `toml:"name_col"`
	GradeCol       int    `toml:"grade_col"`
	CreditCol      int    `toml:"credit_col"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HistoryPath:    filepath.Join(home, ".config", "gpacalc", "history.json"),
		HeaderSkipRows: 1,
		NameCol:        1,
		GradeCol:       2,
		CreditCol:      3,
	}

	cfgPath := filepath.Join(home, ".config", "gpacalc", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// expand ~ in paths
	cfg.HistoryPath = expandHome(cfg.HistoryPath, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
