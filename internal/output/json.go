package output

import (
	"encoding/json"

	"github.com/dl/rgrep/internal/matcher"
)

// JSONFormatter formats results as JSON Lines (one JSON object per match).
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// jsonMatch is the JSON serialization format for a match line.
type jsonMatch struct {
	Type    string  `json:"type"`
	File    string  `json:"file,omitempty"`
	LineNum int     `json:"line_number"`
	Column  int     `json:"column"`
	Text    string  `json:"text"`
	Match   jsonPos `json:"match"`
}

type jsonPos struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// AppendHeader is a no-op: every JSON line carries its own file name.
func (f *JSONFormatter) AppendHeader(buf []byte, _ string) []byte {
	return buf
}

func (f *JSONFormatter) AppendLine(buf []byte, path string, m matcher.LineMatch) []byte {
	start, end := clampRange(len(m.Line), m.Start, m.End)
	jm := jsonMatch{
		Type:    "match",
		File:    path,
		LineNum: m.LineNum,
		Column:  Column(m.Line, start),
		Text:    string(m.Line),
		Match:   jsonPos{Start: start, End: end},
	}
	data, _ := json.Marshal(jm)
	return append(buf, data...)
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
