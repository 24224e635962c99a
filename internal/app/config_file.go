package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the on-disk configuration schema shared by YAML, JSON and TOML.
type FileConfig struct {
	Input  string `yaml:"input" json:"input" toml:"input"`
	Output string `yaml:"output" json:"output" toml:"output"`

	Format struct {
		Input  string `yaml:"input" json:"input" toml:"input"`
		Output string `yaml:"output" json:"output" toml:"output"`
	} `yaml:"format" json:"format" toml:"format"`

	Document struct {
		Title     string `yaml:"title" json:"title" toml:"title"`
		Published string `yaml:"published" json:"published" toml:"published"`
	} `yaml:"document" json:"document" toml:"document"`

	Lexicon struct {
		Stopwords     []string `yaml:"stopwords" json:"stopwords" toml:"stopwords"`
		StopwordsFile string   `yaml:"stopwordsFile" json:"stopwordsFile" toml:"stopwordsFile"`
		Tokenizer     string   `yaml:"tokenizer" json:"tokenizer" toml:"tokenizer"`
		FoldCase      bool     `yaml:"foldCase" json:"foldCase" toml:"foldCase"`
	} `yaml:"lexicon" json:"lexicon" toml:"lexicon"`

	Record struct {
		ID       int    `yaml:"id" json:"id" toml:"id"`
		Category string `yaml:"category" json:"category" toml:"category"`
	} `yaml:"record" json:"record" toml:"record"`

	Interactive bool `yaml:"interactive" json:"interactive" toml:"interactive"`
	Verbose     bool `yaml:"verbose" json:"verbose" toml:"verbose"`
}

// LoadConfigFile reads YAML, JSON or TOML into FileConfig, chosen by extension.
// Files without a known extension are tried as YAML, then JSON.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig fills fields of cfg that are still unset from fc. Flags and
// environment have already been applied, so they keep precedence.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	setString := func(dst *string, v string) {
		if *dst == "" && v != "" {
			*dst = v
		}
	}
	setString(&cfg.InputPath, fc.Input)
	setString(&cfg.OutputPath, fc.Output)
	setString(&cfg.InputFormat, fc.Format.Input)
	setString(&cfg.OutputFormat, fc.Format.Output)
	setString(&cfg.Title, fc.Document.Title)
	setString(&cfg.PublicationDate, fc.Document.Published)
	setString(&cfg.StopwordsFile, fc.Lexicon.StopwordsFile)
	setString(&cfg.Tokenizer, fc.Lexicon.Tokenizer)
	setString(&cfg.Category, fc.Record.Category)

	if len(cfg.ExtraStopwords) == 0 && len(fc.Lexicon.Stopwords) > 0 {
		cfg.ExtraStopwords = append([]string{}, fc.Lexicon.Stopwords...)
	}
	if cfg.RecordID == 0 && fc.Record.ID > 0 {
		cfg.RecordID = fc.Record.ID
	}
	if !cfg.FoldCase && fc.Lexicon.FoldCase {
		cfg.FoldCase = true
	}
	if !cfg.Interactive && fc.Interactive {
		cfg.Interactive = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
