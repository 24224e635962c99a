package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/transcriptfeatures/internal/app"
)

// Exit codes.
const (
	exitOK       = 0
	exitError    = 1
	exitBadInput = 2
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath     string
		envFiles       string
		extraStopwords string
		showVersion    bool
		cfg            app.Config
	)

	flag.StringVar(&configPath, "config", os.Getenv("TRANSCRIPT_CONFIG"), "Path to YAML, JSON or TOML config file")
	flag.StringVar(&envFiles, "env", ".env", "Comma-separated dotenv files to load before reading the environment")
	flag.StringVar(&cfg.InputPath, "input", "", "Transcript file, or - for standard input (default -)")
	flag.StringVar(&cfg.OutputPath, "output", "", "Record output file, or - for standard output (default features.csv)")
	flag.StringVar(&cfg.InputFormat, "input.format", "", "Input format: text or html (default text)")
	flag.StringVar(&cfg.OutputFormat, "format", "", "Output format: csv or json (default csv)")
	flag.StringVar(&cfg.Title, "title", "", "Lecture title; defaults to the first line of the transcript")
	flag.StringVar(&cfg.PublicationDate, "date", "", "Publication date YYYY-MM-DD used for freshness")
	flag.StringVar(&extraStopwords, "stopwords", "", "Comma-separated stopwords added to the built-in list")
	flag.StringVar(&cfg.StopwordsFile, "stopwords.file", "", "File with additional stopwords, one per line")
	flag.StringVar(&cfg.Tokenizer, "tokenizer", "", "Tokenizer: shallow or whitespace (default shallow)")
	flag.BoolVar(&cfg.FoldCase, "fold-case", false, "Case-fold tokens before lexicon matching")
	flag.IntVar(&cfg.RecordID, "id", 0, "Record id column (default 1)")
	flag.StringVar(&cfg.Category, "category", "", "Record categories column (default misc)")
	flag.BoolVar(&cfg.Interactive, "i", false, "Prompt and read the transcript until the first empty line")
	flag.BoolVar(&cfg.Verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("transcriptfeatures %s (%s)\n", app.BuildVersion, app.BuildCommit)
		return
	}
	if s := strings.TrimSpace(extraStopwords); s != "" {
		for _, w := range strings.Split(s, ",") {
			if w = strings.TrimSpace(w); w != "" {
				cfg.ExtraStopwords = append(cfg.ExtraStopwords, w)
			}
		}
	}

	if err := app.LoadEnvFiles(strings.Split(envFiles, ",")...); err != nil {
		log.Error().Err(err).Msg("load env files")
		os.Exit(exitError)
	}
	cfg, err := resolveConfig(cfg, configPath)
	if err != nil {
		log.Error().Err(err).Msg("configuration")
		os.Exit(exitError)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(exitCode(err))
	}
}

// resolveConfig layers environment and the optional config file under the
// values already set by flags.
func resolveConfig(cfg app.Config, configPath string) (app.Config, error) {
	app.ApplyEnvToConfig(&cfg)
	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			return cfg, err
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	return cfg.WithDefaults(), nil
}

// exitCode maps bad input (empty transcript, malformed date) to 2 and
// everything else to 1.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var pe *time.ParseError
	if errors.Is(err, app.ErrEmptyTranscript) || errors.As(err, &pe) {
		return exitBadInput
	}
	return exitError
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}
