package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hyperifyio/transcriptfeatures/internal/extract"
	"github.com/hyperifyio/transcriptfeatures/internal/tokenize"
)

// Defaults applied by WithDefaults to fields left empty.
const (
	DefaultInputPath    = "-"
	DefaultOutputPath   = "features.csv"
	DefaultInputFormat  = "text"
	DefaultOutputFormat = "csv"
	DefaultTokenizer    = "shallow"
	DefaultRecordID     = 1
)

// Config holds runtime configuration for one extraction run.
type Config struct {
	// InputPath is a transcript file, or "-" for standard input.
	InputPath string
	// OutputPath is the record destination, or "-" for standard output.
	OutputPath string

	InputFormat  string // text | html
	OutputFormat string // csv | json

	// Document metadata overrides. Title replaces the first-line title;
	// PublicationDate (YYYY-MM-DD) replaces any date found in the input.
	Title           string
	PublicationDate string

	// Lexicon
	ExtraStopwords []string
	StopwordsFile  string
	Tokenizer      string
	FoldCase       bool

	// Record
	RecordID int
	Category string

	// Behavior
	Interactive bool
	Verbose     bool
}

// WithDefaults returns a copy of cfg with empty fields set to their defaults.
func (cfg Config) WithDefaults() Config {
	if cfg.InputPath == "" {
		cfg.InputPath = DefaultInputPath
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = DefaultOutputPath
	}
	if cfg.InputFormat == "" {
		cfg.InputFormat = DefaultInputFormat
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = DefaultOutputFormat
	}
	if cfg.Tokenizer == "" {
		cfg.Tokenizer = DefaultTokenizer
	}
	if cfg.RecordID == 0 {
		cfg.RecordID = DefaultRecordID
	}
	return cfg
}

// ValidateConfig rejects settings the run cannot honor.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("config: input path is required")
	}
	if strings.TrimSpace(cfg.OutputPath) == "" {
		return errors.New("config: output path is required")
	}
	switch strings.ToLower(cfg.OutputFormat) {
	case "csv", "json":
	default:
		return fmt.Errorf("config: unknown output format %q (want csv or json)", cfg.OutputFormat)
	}
	if _, err := extract.SourceFor(cfg.InputFormat); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := tokenize.ByName(cfg.Tokenizer); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if cfg.RecordID < 0 {
		return errors.New("config: record id must not be negative")
	}
	return nil
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
