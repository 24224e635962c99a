package record

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/hyperifyio/transcriptfeatures/internal/features"
)

func TestHeader_Layout(t *testing.T) {
	if len(Header) != 50 {
		t.Fatalf("header has %d columns, want 50", len(Header))
	}
	checks := map[int]string{
		0:  "id",
		2:  "categories",
		3:  "word_count",
		5:  "document_entropy",
		6:  "easiness",
		12: "conjugate_rate",
		15: "freshness",
		16: "auth_topic_rank_1_url",
		25: "auth_topic_rank_5_score",
		26: "coverage_topic_rank_1_url",
		36: "duration",
		38: "has_parts",
		49: "num_star_ratings",
	}
	for i, want := range checks {
		if Header[i] != want {
			t.Errorf("Header[%d]=%q, want %q", i, Header[i], want)
		}
	}
}

func TestRecord_Row(t *testing.T) {
	days := 19694
	v := features.Vector{WordCount: 4, TitleWordCount: 2, Easiness: 120.205, StopwordPresence: 0.5, Freshness: &days}
	row := New(1, "", v).Row()
	if len(row) != len(Header) {
		t.Fatalf("row has %d cells, want %d", len(row), len(Header))
	}
	want := map[string]string{
		"id":                         "1",
		"fold":                       "",
		"categories":                 "misc",
		"word_count":                 "4",
		"title_word_count":           "2",
		"document_entropy":           "0",
		"easiness":                   "120.205",
		"fraction_stopword_presence": "0.5",
		"freshness":                  "19694",
		"has_parts":                  "False",
		"duration":                   "",
		"num_views":                  "",
	}
	for i, col := range Header {
		if w, ok := want[col]; ok && row[i] != w {
			t.Errorf("%s=%q, want %q", col, row[i], w)
		}
	}
}

func TestRecord_RowWithoutFreshness(t *testing.T) {
	row := New(7, "cs", features.Vector{}).Row()
	if row[15] != "" {
		t.Fatalf("freshness cell=%q, want empty", row[15])
	}
	if row[2] != "cs" {
		t.Fatalf("category=%q", row[2])
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, New(1, "", features.Vector{WordCount: 3})); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(rows))
	}
	if rows[0][3] != "word_count" || rows[1][3] != "3" {
		t.Fatalf("unexpected word_count column: %q / %q", rows[0][3], rows[1][3])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, New(2, "misc", features.Vector{Easiness: 100})); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(Header) {
		t.Fatalf("json has %d keys, want %d", len(got), len(Header))
	}
	if got["easiness"] != 100.0 || got["id"] != 2.0 {
		t.Fatalf("unexpected values: easiness=%v id=%v", got["easiness"], got["id"])
	}
	if got["freshness"] != nil || got["duration"] != nil {
		t.Fatalf("placeholders should be null")
	}
	if got["has_parts"] != false {
		t.Fatalf("has_parts=%v", got["has_parts"])
	}
}
