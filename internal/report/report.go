// internal/report/report.go
// Package report loads score artifacts written by the external scorer and
// renders a strict-vs-fuzzy comparison.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	"github.com/xeipuuv/gojsonschema"

	"github.com/dstlab/wozeval/internal/util"
)

// scoreReportSchema is the minimal shape the scorer is trusted to produce:
// a top-level "dst" object of metric name to numeric value. Other top-level
// keys (disabled metrics, the scorer's own args echo) are ignored.
const scoreReportSchema = `{
	"type": "object",
	"required": ["dst"],
	"properties": {
		"dst": {
			"type": "object",
			"additionalProperties": {"type": "number"}
		}
	}
}`

// ScoreReport holds the DST metrics from one score artifact.
type ScoreReport struct {
	DST map[string]float64 `json:"dst"`
}

// LoadScoreReport reads and validates a score artifact.
func LoadScoreReport(path string) (ScoreReport, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScoreReport{}, fmt.Errorf("error reading score report: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(scoreReportSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return ScoreReport{}, fmt.Errorf("schema validation error: %w", err)
	}
	if !result.Valid() {
		var details []string
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return ScoreReport{}, fmt.Errorf("score report %s failed validation: %s", path, strings.Join(details, "; "))
	}

	var report ScoreReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return ScoreReport{}, fmt.Errorf("error parsing score report: %w", err)
	}
	return report, nil
}

// Comparison is one metric's strict and fuzzy values side by side.
type Comparison struct {
	Metric string  `json:"metric"`
	Strict float64 `json:"strict"`
	Fuzzy  float64 `json:"fuzzy"`
	Delta  float64 `json:"delta"`
}

// Compare pairs up the metrics of two reports, sorted by metric name. A
// metric missing on one side reads as zero there.
func Compare(strict, fuzzy ScoreReport) []Comparison {
	names := make(map[string]struct{}, len(strict.DST))
	for name := range strict.DST {
		names[name] = struct{}{}
	}
	for name := range fuzzy.DST {
		names[name] = struct{}{}
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	rows := make([]Comparison, 0, len(sorted))
	for _, name := range sorted {
		s := strict.DST[name]
		f := fuzzy.DST[name]
		rows = append(rows, Comparison{Metric: name, Strict: s, Fuzzy: f, Delta: f - s})
	}
	return rows
}

// Options controls how the summary is rendered.
type Options struct {
	JSONMode bool
	Debug    bool
}

// summary is the JSON-mode output shape.
type summary struct {
	StrictReport string       `json:"strictReport"`
	FuzzyReport  string       `json:"fuzzyReport"`
	Metrics      []Comparison `json:"metrics"`
}

// PrintSummary loads both score artifacts and prints a strict-vs-fuzzy
// metric comparison to stdout.
func PrintSummary(strictPath, fuzzyPath string, opts Options) error {
	strict, err := LoadScoreReport(strictPath)
	if err != nil {
		return err
	}
	fuzzy, err := LoadScoreReport(fuzzyPath)
	if err != nil {
		return err
	}

	if opts.Debug {
		pp.Println(strict)
		pp.Println(fuzzy)
	}

	rows := Compare(strict, fuzzy)

	if opts.JSONMode {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary{
			StrictReport: strictPath,
			FuzzyReport:  fuzzyPath,
			Metrics:      rows,
		})
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	fmt.Println(headerStyle.Render("DST scores (strict vs fuzzy)"))
	fmt.Println(pathStyle.Render("  strict: " + util.TruncateRunes(strictPath, 72)))
	fmt.Println(pathStyle.Render("  fuzzy:  " + util.TruncateRunes(fuzzyPath, 72)))
	fmt.Printf("%s %10s %10s %10s\n", util.PadRight("metric", 18), "strict", "fuzzy", "delta")
	for _, row := range rows {
		fmt.Printf("%s %10.2f %10.2f %10s\n",
			util.PadRight(row.Metric, 18), row.Strict, row.Fuzzy, formatDelta(row.Delta))
	}
	return nil
}

func formatDelta(delta float64) string {
	text := fmt.Sprintf("%+.2f", delta)
	switch {
	case delta > 0:
		return color.GreenString(text)
	case delta < 0:
		return color.RedString(text)
	default:
		return text
	}
}
