// internal/pipeline/paths.go
package pipeline

import (
	"path/filepath"
	"strings"
)

// Artifact suffixes appended to the run name under the output directory.
const (
	scoreSuffix      = "_score.json"
	fuzzySuffix      = "_fuzzy.json"
	fuzzyScoreSuffix = "_fuzzy_score.json"
)

// RunPaths names every artifact a single evaluation run produces. Base and
// Fname are derived from the predictions path alone, so reruns with the same
// inputs overwrite the same artifacts.
type RunPaths struct {
	Base  string // parent directory name of the predictions file
	Fname string // predictions file name with the .json token removed
	Dir   string // <output base dir>/<base>

	Score      string // strict score report
	Fuzzy      string // fuzzy-normalized predictions
	FuzzyScore string // score report over the normalized predictions
}

// DeriveRunPaths computes the run identity and artifact paths for a
// predictions file. The derivation is string surgery on purpose: the path is
// split on "/" and every literal ".json" token is removed from the file
// name, so "preds.json.json" becomes "preds" and other extensions survive.
// This mirrors the upstream harness exactly; do not swap in filepath.Ext.
func DeriveRunPaths(predictionsPath, outputBaseDir string) RunPaths {
	parts := strings.Split(predictionsPath, "/")
	fname := strings.ReplaceAll(parts[len(parts)-1], ".json", "")

	base := ""
	if len(parts) >= 2 {
		base = parts[len(parts)-2]
	}

	dir := filepath.Join(outputBaseDir, base)
	return RunPaths{
		Base:       base,
		Fname:      fname,
		Dir:        dir,
		Score:      filepath.Join(dir, fname+scoreSuffix),
		Fuzzy:      filepath.Join(dir, fname+fuzzySuffix),
		FuzzyScore: filepath.Join(dir, fname+fuzzyScoreSuffix),
	}
}
