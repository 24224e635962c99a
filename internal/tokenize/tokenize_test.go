package tokenize

import (
	"reflect"
	"testing"
)

func TestShallow_StripsEdgePunctuationKeepsCase(t *testing.T) {
	got := Shallow{}.Tokenize("  The cat, (sat) on the mat... can't stop -- \"Really?\"\n")
	want := []string{"The", "cat", "sat", "on", "the", "mat", "can't", "stop", "Really"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize()=%q\nwant %q", got, want)
	}
}

func TestShallow_EmptyAndPunctuationOnly(t *testing.T) {
	if got := (Shallow{}).Tokenize(""); len(got) != 0 {
		t.Fatalf("empty input: got %q", got)
	}
	if got := (Shallow{}).Tokenize(" ... !!! -- "); len(got) != 0 {
		t.Fatalf("punctuation-only input: got %q", got)
	}
}

func TestShallow_NormalizesToNFC(t *testing.T) {
	got := Shallow{}.Tokenize("cafe\u0301")
	if len(got) != 1 || got[0] != "caf\u00e9" {
		t.Fatalf("expected composed form, got %q", got)
	}
}

func TestShallow_Deterministic(t *testing.T) {
	text := "Information management, the theory; and practice."
	a := Shallow{}.Tokenize(text)
	b := Shallow{}.Tokenize(text)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("two calls disagree: %q vs %q", a, b)
	}
}

func TestWhitespace_KeepsPunctuation(t *testing.T) {
	got := Whitespace{}.Tokenize("Cats run. Dogs\tjump.")
	want := []string{"Cats", "run.", "Dogs", "jump."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize()=%q, want %q", got, want)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "shallow", " Shallow "} {
		tk, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if _, ok := tk.(Shallow); !ok {
			t.Fatalf("ByName(%q) returned %T", name, tk)
		}
	}
	tk, err := ByName("whitespace")
	if err != nil {
		t.Fatalf("ByName(whitespace): %v", err)
	}
	if _, ok := tk.(Whitespace); !ok {
		t.Fatalf("ByName(whitespace) returned %T", tk)
	}
	if _, err := ByName("jieba"); err == nil {
		t.Fatalf("expected error for unknown tokenizer")
	}
}

func TestFold(t *testing.T) {
	in := []string{"The", "CAT", "is"}
	got := Fold(in)
	if want := []string{"the", "cat", "is"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Fold()=%q, want %q", got, want)
	}
	if in[0] != "The" {
		t.Fatalf("Fold must not modify its input")
	}
}
