// Package report writes puzzle answers and sample checks as text, JSON or
// YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/helixml/aoc2023/domain/puzzle"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat indicates an output format other than text, json or yaml.
var ErrUnknownFormat = errors.New("unknown output format")

// Format is an output encoding.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// ParseFormat converts a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// AnswerRecord is the serialized form of an answer.
type AnswerRecord struct {
	Day            int    `json:"day" yaml:"day"`
	Part           int    `json:"part" yaml:"part"`
	Answer         int    `json:"answer" yaml:"answer"`
	Elapsed        string `json:"elapsed" yaml:"elapsed"`
	SamplesChecked int    `json:"samples_checked" yaml:"samples_checked"`
}

// CheckRecord is the serialized form of one sample check.
type CheckRecord struct {
	Day    int    `json:"day" yaml:"day"`
	Part   int    `json:"part" yaml:"part"`
	Sample string `json:"sample" yaml:"sample"`
	Want   int    `json:"want" yaml:"want"`
	Got    int    `json:"got" yaml:"got"`
	Passed bool   `json:"passed" yaml:"passed"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewAnswerRecord converts an answer.
func NewAnswerRecord(a puzzle.Answer) AnswerRecord {
	return AnswerRecord{
		Day:            int(a.Day()),
		Part:           int(a.Part()),
		Answer:         a.Value(),
		Elapsed:        FormatElapsed(a.Elapsed()),
		SamplesChecked: a.SamplesChecked(),
	}
}

// Encoder writes reports to a writer in one format.
type Encoder struct {
	w      io.Writer
	format Format
}

// NewEncoder creates an Encoder.
func NewEncoder(w io.Writer, format Format) *Encoder {
	return &Encoder{w: w, format: format}
}

// Format returns the encoder's output format.
func (e *Encoder) Format() Format { return e.format }

// Answers writes answers, one line each in text format or as a single list
// otherwise.
func (e *Encoder) Answers(answers []puzzle.Answer) error {
	records := make([]AnswerRecord, len(answers))
	for i, a := range answers {
		records[i] = NewAnswerRecord(a)
	}
	if e.format != FormatText {
		return e.structured(records)
	}
	for _, r := range records {
		if _, err := fmt.Fprintf(e.w, "day %d part %d: %d (%s)\n", r.Day, r.Part, r.Answer, r.Elapsed); err != nil {
			return fmt.Errorf("write answer: %w", err)
		}
	}
	return nil
}

// Checks writes sample check outcomes.
func (e *Encoder) Checks(checks []CheckRecord) error {
	if e.format != FormatText {
		if checks == nil {
			checks = []CheckRecord{}
		}
		return e.structured(checks)
	}
	for _, c := range checks {
		status := "ok"
		switch {
		case c.Error != "":
			status = "error: " + c.Error
		case !c.Passed:
			status = fmt.Sprintf("FAIL got %d, want %d", c.Got, c.Want)
		}
		if _, err := fmt.Fprintf(e.w, "day %d part %d %s: %s\n", c.Day, c.Part, c.Sample, status); err != nil {
			return fmt.Errorf("write check: %w", err)
		}
	}
	return nil
}

// Puzzles writes the registered puzzles as a listing.
func (e *Encoder) Puzzles(puzzles []puzzle.Puzzle) error {
	type listing struct {
		Day     int    `json:"day" yaml:"day"`
		Title   string `json:"title" yaml:"title"`
		Parts   []int  `json:"parts" yaml:"parts"`
		Samples int    `json:"samples" yaml:"samples"`
	}
	rows := make([]listing, len(puzzles))
	for i, p := range puzzles {
		rows[i] = listing{Day: int(p.Day()), Title: p.Title(), Samples: len(p.Samples())}
		for _, part := range p.Implemented() {
			rows[i].Parts = append(rows[i].Parts, int(part))
		}
	}
	if e.format != FormatText {
		return e.structured(rows)
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(e.w, "day %2d  %-24s parts %v  samples %d\n", r.Day, r.Title, r.Parts, r.Samples); err != nil {
			return fmt.Errorf("write listing: %w", err)
		}
	}
	return nil
}

func (e *Encoder) structured(v any) error {
	switch e.format {
	case FormatJSON:
		enc := json.NewEncoder(e.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(e.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, e.format)
}

// FormatElapsed renders a duration with about two significant digits, e.g.
// 1.2ms or 350µs.
func FormatElapsed(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(100 * time.Microsecond).String()
	default:
		return d.Round(10 * time.Millisecond).String()
	}
}
