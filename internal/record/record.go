// Package record lays a feature Vector out as the fixed 50-column row used by
// the lecture quality datasets, and writes it as CSV or JSON.
//
// Only the content-based columns are produced here. Topic ranks, engagement
// statistics and video metadata come from other systems and are emitted as
// empty placeholders.
package record

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/hyperifyio/transcriptfeatures/internal/features"
)

// Header is the column order of every emitted row.
var Header = buildHeader()

func buildHeader() []string {
	h := []string{"id", "fold", "categories"}
	h = append(h, features.Names...)
	for _, kind := range []string{"auth", "coverage"} {
		for i := 1; i <= 5; i++ {
			h = append(h,
				fmt.Sprintf("%s_topic_rank_%d_url", kind, i),
				fmt.Sprintf("%s_topic_rank_%d_score", kind, i),
			)
		}
	}
	return append(h,
		"duration", "speaker_speed", "has_parts", "type", "silent_period_rate",
		"min_engagement", "max_engagement", "med_engagement", "mean_engagement", "sd_engagement",
		"num_learners", "num_views", "avg_star_rating", "num_star_ratings",
	)
}

// DefaultCategory is used when no category is configured.
const DefaultCategory = "misc"

// Record is one output row.
type Record struct {
	ID       int
	Category string
	Features features.Vector
	HasParts bool
}

// New builds a Record with the default category when category is blank.
func New(id int, category string, v features.Vector) Record {
	if category == "" {
		category = DefaultCategory
	}
	return Record{ID: id, Category: category, Features: v}
}

// intColumns are rendered without a fractional part.
var intColumns = map[string]bool{
	features.NameWordCount:      true,
	features.NameTitleWordCount: true,
	features.NameFreshness:      true,
}

// Values returns the row as column name to value; unknown columns map to nil.
func (r Record) Values() map[string]any {
	out := make(map[string]any, len(Header))
	for _, col := range Header {
		out[col] = nil
	}
	out["id"] = r.ID
	out["categories"] = r.Category
	out["has_parts"] = r.HasParts
	for name, v := range r.Features.Map() {
		if intColumns[name] {
			out[name] = int(v)
		} else {
			out[name] = v
		}
	}
	return out
}

// Row renders the record in Header order. Placeholders are empty strings.
func (r Record) Row() []string {
	values := r.Values()
	row := make([]string, len(Header))
	for i, col := range Header {
		row[i] = formatCell(values[col])
	}
	return row
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		if x {
			return "True"
		}
		return "False"
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

// WriteCSV writes the header followed by one row per record.
func WriteCSV(w io.Writer, recs ...Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range recs {
		if err := cw.Write(r.Row()); err != nil {
			return fmt.Errorf("write csv row %d: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes rec as a single JSON object keyed by column name.
func WriteJSON(w io.Writer, rec Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec.Values()); err != nil {
		return fmt.Errorf("encode json record: %w", err)
	}
	return nil
}
