package extract

import (
	"fmt"
	"strings"
)

// Source converts raw input bytes of one format into a Document.
type Source interface {
	Extract(input []byte) Document
}

// TextSource treats input as a plain transcript.
type TextSource struct{}

func (TextSource) Extract(input []byte) Document {
	return FromText(string(input))
}

// HTMLSource treats input as a lecture web page.
type HTMLSource struct{}

func (HTMLSource) Extract(input []byte) Document {
	return FromHTML(input)
}

// SourceFor resolves an input format name ("text" or "html").
func SourceFor(format string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text", "txt":
		return TextSource{}, nil
	case "html", "htm":
		return HTMLSource{}, nil
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}
