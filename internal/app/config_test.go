package app

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadConfigFile_Formats(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"cfg.yaml": "input: talk.html\nformat:\n  input: html\n  output: json\nlexicon:\n  stopwords: [um, uh]\n  foldCase: true\nrecord:\n  id: 9\n",
		"cfg.json": `{"input":"talk.html","format":{"input":"html","output":"json"},"lexicon":{"stopwords":["um","uh"],"foldCase":true},"record":{"id":9}}`,
		"cfg.toml": "input = \"talk.html\"\n\n[format]\ninput = \"html\"\noutput = \"json\"\n\n[lexicon]\nstopwords = [\"um\", \"uh\"]\nfoldCase = true\n\n[record]\nid = 9\n",
		"cfg.conf": "input: talk.html\nformat:\n  input: html\n  output: json\nlexicon:\n  stopwords: [um, uh]\n  foldCase: true\nrecord:\n  id: 9\n",
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(dir, name)
			if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			fc, err := LoadConfigFile(p)
			if err != nil {
				t.Fatalf("LoadConfigFile: %v", err)
			}
			if fc.Input != "talk.html" || fc.Format.Input != "html" || fc.Format.Output != "json" {
				t.Fatalf("unexpected fields %+v", fc)
			}
			if !reflect.DeepEqual(fc.Lexicon.Stopwords, []string{"um", "uh"}) || !fc.Lexicon.FoldCase {
				t.Fatalf("unexpected lexicon section %+v", fc.Lexicon)
			}
			if fc.Record.ID != 9 {
				t.Fatalf("record id=%d", fc.Record.ID)
			}
		})
	}
}

func TestLoadConfigFile_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfigFile(filepath.Join(dir, "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("input = [unterminated"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfigFile(bad); err == nil || !strings.Contains(err.Error(), "toml") {
		t.Fatalf("expected toml parse error, got %v", err)
	}
}

func TestApplyFileConfig_DoesNotOverrideExplicit(t *testing.T) {
	var fc FileConfig
	fc.Input = "file.txt"
	fc.Output = "file.csv"
	fc.Lexicon.Tokenizer = "whitespace"
	fc.Lexicon.Stopwords = []string{"um"}
	fc.Record.ID = 5
	fc.Verbose = true

	cfg := Config{InputPath: "flag.txt", ExtraStopwords: []string{"uh"}}
	ApplyFileConfig(&cfg, fc)

	if cfg.InputPath != "flag.txt" {
		t.Fatalf("explicit input overridden: %q", cfg.InputPath)
	}
	if cfg.OutputPath != "file.csv" || cfg.Tokenizer != "whitespace" || cfg.RecordID != 5 || !cfg.Verbose {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.ExtraStopwords, []string{"uh"}) {
		t.Fatalf("explicit stopwords overridden: %q", cfg.ExtraStopwords)
	}
	ApplyFileConfig(nil, fc)
}

func TestWithDefaultsAndValidate(t *testing.T) {
	cfg := Config{}.WithDefaults()
	if cfg.InputPath != "-" || cfg.OutputPath != "features.csv" || cfg.OutputFormat != "csv" || cfg.RecordID != 1 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	bad := []Config{
		func() Config { c := cfg; c.OutputFormat = "xml"; return c }(),
		func() Config { c := cfg; c.InputFormat = "pdf"; return c }(),
		func() Config { c := cfg; c.Tokenizer = "bpe"; return c }(),
		func() Config { c := cfg; c.OutputPath = "  "; return c }(),
		func() Config { c := cfg; c.RecordID = -1; return c }(),
	}
	for i, c := range bad {
		if err := ValidateConfig(c); err == nil {
			t.Errorf("case %d: expected validation error for %+v", i, c)
		}
	}
}
