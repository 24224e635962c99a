package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hyperifyio/transcriptfeatures/internal/lexicon"
)

// ReadTranscript reads a transcript from r. With stopAtBlank set, reading
// ends at the first empty line, matching a paste-then-Enter terminal session;
// otherwise everything up to EOF is returned.
func ReadTranscript(r io.Reader, stopAtBlank bool) (string, error) {
	if !stopAtBlank {
		b, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("read transcript: %w", err)
		}
		return string(b), nil
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return strings.Join(lines, "\n"), nil
}

// LoadStopwordsFile reads one stopword per line. Blank lines and lines
// starting with '#' are ignored.
func LoadStopwordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stopwords file: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stopwords file: %w", err)
	}
	return words, nil
}

// stopwordSet merges the built-in stopwords with those from cfg.
func stopwordSet(cfg Config) (lexicon.Set, error) {
	extra := append([]string{}, cfg.ExtraStopwords...)
	if cfg.StopwordsFile != "" {
		words, err := LoadStopwordsFile(cfg.StopwordsFile)
		if err != nil {
			return lexicon.Set{}, err
		}
		extra = append(extra, words...)
	}
	return lexicon.Stopwords(extra...), nil
}
