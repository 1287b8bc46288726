package main

import (
	"fmt"
	"log/slog"

	"github.com/prodbyola/urlencoding/pkg/config"
)

// FileConfig is the shape of a urlenc config file:
//
//	exclude: "/:"   # extra safe characters
//	lines: true     # encode stdin one line at a time
//	newline: false  # no newline after each encoded argument
type FileConfig struct {
	Exclude string `json:"exclude"`
	Lines   bool   `json:"lines"`
	Newline *bool  `json:"newline,omitempty"`
}

// settings is the merged result of flags and config files.
type settings struct {
	exclude string
	lines   bool
	newline bool
}

func loadFileConfig(patterns []string) (*FileConfig, error) {
	if len(patterns) == 0 {
		return &FileConfig{}, nil
	}

	val, err := config.LoadAndUnifyPaths(patterns)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return config.Decode[FileConfig](val)
}

// resolve merges flags over the config files. Exclusions from both
// sources are combined.
func (c *CLI) resolve(logger *slog.Logger) (settings, error) {
	fc, err := loadFileConfig(c.Config)
	if err != nil {
		return settings{}, err
	}

	s := settings{
		exclude: fc.Exclude + c.Exclude,
		lines:   c.Lines || fc.Lines,
		newline: !c.NoNewline && (fc.Newline == nil || *fc.Newline),
	}

	logger.Debug("resolved settings",
		slog.Any("config", c.Config),
		slog.String("exclude", s.exclude),
		slog.Bool("lines", s.lines),
		slog.Bool("newline", s.newline),
	)

	return s, nil
}
