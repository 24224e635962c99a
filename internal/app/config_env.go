package app

import (
	"os"
	"strconv"
	"strings"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	setString := func(dst *string, envKey string) {
		if *dst == "" {
			*dst = strings.TrimSpace(os.Getenv(envKey))
		}
	}
	setString(&cfg.InputPath, "TRANSCRIPT_INPUT")
	setString(&cfg.OutputPath, "TRANSCRIPT_OUTPUT")
	setString(&cfg.InputFormat, "TRANSCRIPT_INPUT_FORMAT")
	setString(&cfg.OutputFormat, "TRANSCRIPT_FORMAT")
	setString(&cfg.Title, "TRANSCRIPT_TITLE")
	setString(&cfg.PublicationDate, "PUBLICATION_DATE")
	setString(&cfg.StopwordsFile, "STOPWORDS_FILE")
	setString(&cfg.Tokenizer, "TOKENIZER")
	setString(&cfg.Category, "RECORD_CATEGORY")

	if len(cfg.ExtraStopwords) == 0 {
		if s := os.Getenv("EXTRA_STOPWORDS"); strings.TrimSpace(s) != "" {
			cfg.ExtraStopwords = splitList(s)
		}
	}
	if cfg.RecordID == 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("RECORD_ID"))); err == nil && n > 0 {
			cfg.RecordID = n
		}
	}

	setBool := func(dst *bool, envKey string) {
		if *dst {
			return
		}
		switch strings.ToLower(strings.TrimSpace(os.Getenv(envKey))) {
		case "1", "true", "yes", "on":
			*dst = true
		}
	}
	setBool(&cfg.FoldCase, "FOLD_CASE")
	setBool(&cfg.Interactive, "INTERACTIVE")
	setBool(&cfg.Verbose, "VERBOSE")
}
