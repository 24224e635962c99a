package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/transcriptfeatures/internal/extract"
	"github.com/hyperifyio/transcriptfeatures/internal/features"
	"github.com/hyperifyio/transcriptfeatures/internal/record"
	"github.com/hyperifyio/transcriptfeatures/internal/tokenize"
)

// ErrEmptyTranscript is returned when the input holds no text to measure.
var ErrEmptyTranscript = errors.New("empty transcript")

// InteractivePrompt is printed before reading a transcript interactively.
const InteractivePrompt = "Enter/paste your transcript. Press Enter on an empty line to finish:"

type App struct {
	cfg       Config
	source    extract.Source
	extractor features.Extractor

	// Overridable in tests.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New validates cfg and resolves the tokenizer, input format and stopwords.
func New(cfg Config) (*App, error) {
	cfg = cfg.WithDefaults()
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	source, err := extract.SourceFor(cfg.InputFormat)
	if err != nil {
		return nil, err
	}
	tk, err := tokenize.ByName(cfg.Tokenizer)
	if err != nil {
		return nil, err
	}
	stopwords, err := stopwordSet(cfg)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("tokenizer", cfg.Tokenizer).
		Int("stopwords", stopwords.Len()).
		Bool("fold_case", cfg.FoldCase).
		Msg("extractor configured")

	return &App{
		cfg:       cfg,
		source:    source,
		extractor: features.Extractor{Tokenizer: tk, Stopwords: stopwords, FoldCase: cfg.FoldCase},
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}, nil
}

// Run reads one transcript, extracts its features and writes the record.
func (a *App) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := a.readInput()
	if err != nil {
		return err
	}
	doc := a.source.Extract(raw)
	if a.cfg.Title != "" {
		doc.Title = a.cfg.Title
	}
	if a.cfg.PublicationDate != "" {
		doc.Published = a.cfg.PublicationDate
	}
	if strings.TrimSpace(doc.Text) == "" {
		return ErrEmptyTranscript
	}
	log.Debug().Str("title", doc.Title).Str("published", doc.Published).Int("bytes", len(doc.Text)).Msg("document loaded")

	if err := ctx.Err(); err != nil {
		return err
	}
	v, err := a.extractor.Extract(doc)
	if err != nil {
		return fmt.Errorf("extract features: %w", err)
	}
	log.Info().
		Int("word_count", v.WordCount).
		Float64("entropy", v.DocumentEntropy).
		Float64("easiness", v.Easiness).
		Float64("stopword_presence", v.StopwordPresence).
		Msg("features extracted")

	return a.writeRecord(record.New(a.cfg.RecordID, a.cfg.Category, v))
}

func (a *App) readInput() ([]byte, error) {
	if a.cfg.InputPath == "-" {
		if a.cfg.Interactive {
			fmt.Fprintln(a.Stderr, InteractivePrompt)
		}
		text, err := ReadTranscript(a.Stdin, a.cfg.Interactive)
		if err != nil {
			return nil, err
		}
		return []byte(text), nil
	}
	b, err := os.ReadFile(a.cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return b, nil
}

func (a *App) writeRecord(rec record.Record) error {
	if a.cfg.OutputPath == "-" {
		return a.encode(a.Stdout, rec)
	}
	f, err := os.Create(a.cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := a.encode(f, rec); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	log.Info().Str("path", a.cfg.OutputPath).Str("format", a.cfg.OutputFormat).Msg("record written")
	return nil
}

func (a *App) encode(w io.Writer, rec record.Record) error {
	if strings.EqualFold(a.cfg.OutputFormat, "json") {
		return record.WriteJSON(w, rec)
	}
	return record.WriteCSV(w, rec)
}
