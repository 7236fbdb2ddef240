package report

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeReport(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScoreReport(t *testing.T) {
	path := writeReport(t, "score.json", `{
		"dst": {"joint_accuracy": 34.12, "slot_f1": 81.7},
		"bleu": null,
		"args": {"input": "preds.json"}
	}`)

	report, err := LoadScoreReport(path)
	if err != nil {
		t.Fatalf("LoadScoreReport error: %v", err)
	}
	if report.DST["joint_accuracy"] != 34.12 {
		t.Fatalf("unexpected joint_accuracy: %v", report.DST["joint_accuracy"])
	}
	if len(report.DST) != 2 {
		t.Fatalf("expected 2 dst metrics, got %d", len(report.DST))
	}
}

func TestLoadScoreReportRejectsMissingDST(t *testing.T) {
	path := writeReport(t, "score.json", `{"bleu": {"mwz22": 10.0}}`)
	if _, err := LoadScoreReport(path); err == nil {
		t.Fatal("expected validation error for report without dst")
	}
}

func TestLoadScoreReportRejectsNonNumericValues(t *testing.T) {
	path := writeReport(t, "score.json", `{"dst": {"joint_accuracy": "34%"}}`)
	if _, err := LoadScoreReport(path); err == nil {
		t.Fatal("expected validation error for non-numeric metric")
	}
}

func TestLoadScoreReportMissingFile(t *testing.T) {
	if _, err := LoadScoreReport(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing score report")
	}
}

func TestCompare(t *testing.T) {
	strict := ScoreReport{DST: map[string]float64{"joint_accuracy": 30.0, "slot_f1": 80.0}}
	fuzzy := ScoreReport{DST: map[string]float64{"joint_accuracy": 35.5, "slot_precision": 82.0}}

	rows := Compare(strict, fuzzy)
	if len(rows) != 3 {
		t.Fatalf("expected union of 3 metrics, got %d", len(rows))
	}
	if rows[0].Metric != "joint_accuracy" || rows[1].Metric != "slot_f1" || rows[2].Metric != "slot_precision" {
		t.Fatalf("expected sorted metric names, got %+v", rows)
	}
	if math.Abs(rows[0].Delta-5.5) > 1e-9 {
		t.Fatalf("unexpected delta: %v", rows[0].Delta)
	}
	if rows[1].Fuzzy != 0 || rows[2].Strict != 0 {
		t.Fatalf("missing metrics must read as zero: %+v", rows)
	}
}

func TestPrintSummaryJSONMode(t *testing.T) {
	strictPath := writeReport(t, "strict.json", `{"dst": {"joint_accuracy": 30.0}}`)
	fuzzyPath := writeReport(t, "fuzzy.json", `{"dst": {"joint_accuracy": 36.0}}`)

	if err := PrintSummary(strictPath, fuzzyPath, Options{JSONMode: true}); err != nil {
		t.Fatalf("PrintSummary error: %v", err)
	}
}

func TestPrintSummaryPropagatesLoadFailure(t *testing.T) {
	strictPath := writeReport(t, "strict.json", `{"dst": {"joint_accuracy": 30.0}}`)
	if err := PrintSummary(strictPath, filepath.Join(t.TempDir(), "nope.json"), Options{}); err == nil {
		t.Fatal("expected error for missing fuzzy report")
	}
}
